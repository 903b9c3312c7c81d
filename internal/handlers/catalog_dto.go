package handlers

import (
	"time"

	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
)

// MovieListItem is one row of the public movie list.
type MovieListItem struct {
	ID      uint   `json:"id" example:"1"`
	Title   string `json:"title" example:"Casablanca"`
	Tagline string `json:"tagline"`
	Poster  string `json:"poster"`
	URL     string `json:"url" example:"casablanca"`
}

// PublicReview hides the reviewer's email address.
type PublicReview struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Text      string         `json:"text"`
	ParentID  *uint          `json:"parent_id"`
	CreatedAt time.Time      `json:"created_at"`
	Children  []PublicReview `json:"children,omitempty"`
}

type PublicShot struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type PublicPerson struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type PublicTerm struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type MovieDetailResponse struct {
	ID            uint                 `json:"id"`
	Title         string               `json:"title"`
	Tagline       string               `json:"tagline"`
	Description   string               `json:"description"`
	Poster        string               `json:"poster"`
	Year          uint16               `json:"year"`
	Country       string               `json:"country"`
	WorldPremiere string               `json:"world_premiere" example:"1942-11-26"`
	Budget        uint64               `json:"budget"`
	FeesInUSA     uint64               `json:"fees_in_usa"`
	FeesInWorld   uint64               `json:"fees_in_world"`
	Category      *PublicTerm          `json:"category"`
	URL           string               `json:"url"`
	Draft         bool                 `json:"draft"`
	Actors        []PublicPerson       `json:"actors"`
	Directors     []PublicPerson       `json:"directors"`
	Genres        []PublicTerm         `json:"genres"`
	Shots         []PublicShot         `json:"shots"`
	Reviews       []PublicReview       `json:"reviews"`
	Rating        models.RatingSummary `json:"rating"`
}

func newMovieListItems(movies []models.Movie) []MovieListItem {
	items := make([]MovieListItem, 0, len(movies))
	for _, m := range movies {
		items = append(items, MovieListItem{ID: m.ID, Title: m.Title, Tagline: m.Tagline, Poster: m.Poster, URL: m.URL})
	}
	return items
}

func newMovieDetailResponse(detail *services.MovieDetail) MovieDetailResponse {
	m := detail.Movie
	resp := MovieDetailResponse{
		ID:          m.ID,
		Title:       m.Title,
		Tagline:     m.Tagline,
		Description: m.Description,
		Poster:      m.Poster,
		Year:        m.Year,
		Country:     m.Country,
		Budget:      m.Budget,
		FeesInUSA:   m.FeesInUSA,
		FeesInWorld: m.FeesInWorld,
		URL:         m.URL,
		Draft:       m.Draft,
		Actors:      newPeople(m.Actors),
		Directors:   newPeople(m.Directors),
		Genres:      make([]PublicTerm, 0, len(m.Genres)),
		Shots:       make([]PublicShot, 0, len(m.Shots)),
		Reviews:     newPublicReviews(m.Reviews),
		Rating:      detail.Rating,
	}
	if !m.WorldPremiere.IsZero() {
		resp.WorldPremiere = m.WorldPremiere.Format(dateLayout)
	}
	if m.Category != nil {
		resp.Category = &PublicTerm{ID: m.Category.ID, Name: m.Category.Name, URL: m.Category.URL}
	}
	for _, g := range m.Genres {
		resp.Genres = append(resp.Genres, PublicTerm{ID: g.ID, Name: g.Name, URL: g.URL})
	}
	for _, s := range m.Shots {
		resp.Shots = append(resp.Shots, PublicShot{ID: s.ID, Title: s.Title, Description: s.Description, Image: s.Image})
	}
	return resp
}

func newPeople(actors []models.Actor) []PublicPerson {
	people := make([]PublicPerson, 0, len(actors))
	for _, a := range actors {
		people = append(people, PublicPerson{ID: a.ID, Name: a.Name, Image: a.Image})
	}
	return people
}

func newPublicReviews(reviews []models.Review) []PublicReview {
	out := make([]PublicReview, 0, len(reviews))
	for _, r := range reviews {
		review := PublicReview{
			ID:        r.ID,
			Name:      r.Name,
			Text:      r.Text,
			ParentID:  r.ParentID,
			CreatedAt: r.CreatedAt,
		}
		if len(r.Children) > 0 {
			review.Children = newPublicReviews(r.Children)
		}
		out = append(out, review)
	}
	return out
}
