package handlers

import (
	"time"

	"movie-catalog/internal/services"
)

const dateLayout = "2006-01-02"

type ShotRowRequest struct {
	ID          uint   `json:"id"`
	Title       string `json:"title" validate:"required_unless=Delete true,max=100"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Delete      bool   `json:"delete"`
}

// MovieRequest is the movie edit form. Budget and box office fields are
// unsigned, so negative amounts are rejected while parsing, and capped at
// the largest bigint.
type MovieRequest struct {
	Title         string           `json:"title" validate:"required,max=100"`
	Tagline       string           `json:"tagline" validate:"max=100"`
	Description   string           `json:"description"`
	Poster        string           `json:"poster"`
	Year          uint16           `json:"year" example:"1942"`
	Country       string           `json:"country" validate:"max=50"`
	WorldPremiere string           `json:"world_premiere" validate:"omitempty,datetime=2006-01-02" example:"1942-11-26"`
	Budget        uint64           `json:"budget" validate:"max=9223372036854775807"`
	FeesInUSA     uint64           `json:"fees_in_usa" validate:"max=9223372036854775807"`
	FeesInWorld   uint64           `json:"fees_in_world" validate:"max=9223372036854775807"`
	CategoryID    *uint            `json:"category_id"`
	URL           string           `json:"url" validate:"required,max=160,slug" example:"casablanca"`
	Draft         bool             `json:"draft"`
	Actors        []uint           `json:"actors"`
	Directors     []uint           `json:"directors"`
	Genres        []uint           `json:"genres"`
	Shots         []ShotRowRequest `json:"shots" validate:"dive"`
	DeleteReviews []uint           `json:"delete_reviews"`
}

func (r MovieRequest) toInput() services.MovieInput {
	input := services.MovieInput{
		Title:           r.Title,
		Tagline:         r.Tagline,
		Description:     r.Description,
		Poster:          r.Poster,
		Year:            r.Year,
		Country:         r.Country,
		Budget:          r.Budget,
		FeesInUSA:       r.FeesInUSA,
		FeesInWorld:     r.FeesInWorld,
		CategoryID:      r.CategoryID,
		URL:             r.URL,
		Draft:           r.Draft,
		ActorIDs:        r.Actors,
		DirectorIDs:     r.Directors,
		GenreIDs:        r.Genres,
		DeleteReviewIDs: r.DeleteReviews,
	}
	if r.WorldPremiere != "" {
		// already checked by the datetime rule
		if t, err := time.Parse(dateLayout, r.WorldPremiere); err == nil {
			input.WorldPremiere = &t
		}
	}
	for _, row := range r.Shots {
		input.Shots = append(input.Shots, services.ShotInput{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Image:       row.Image,
			Delete:      row.Delete,
		})
	}
	return input
}

type DraftRequest struct {
	Draft *bool `json:"draft" validate:"required"`
}

type ActionRequest struct {
	Action string `json:"action" validate:"required,oneof=publish unpublish" example:"publish"`
	IDs    []uint `json:"ids" validate:"required,min=1"`
}

type ActorRequest struct {
	Name        string `json:"name" validate:"required,max=160"`
	Age         uint16 `json:"age"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type ShotRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description"`
	Image       string `json:"image"`
	MovieID     uint   `json:"movie_id" validate:"required"`
}

// TaxonomyRequest creates or updates a category or a genre.
type TaxonomyRequest struct {
	Name        string `json:"name" validate:"required,max=160"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,max=160,slug"`
}

type StarRequest struct {
	Value uint16 `json:"value" example:"5"`
}

type RatingRequest struct {
	IP      string `json:"ip" validate:"required,max=45"`
	StarID  uint   `json:"star_id" validate:"required"`
	MovieID uint   `json:"movie_id" validate:"required"`
}
