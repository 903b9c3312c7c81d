package admin

import (
	"movie-catalog/internal/models"
)

var (
	ActorColumns    = []string{"name", "age", "description", "get_image", "id"}
	ShotColumns     = []string{"title", "description", "get_image", "movie", "id"}
	ReviewColumns   = []string{"name", "email", "parent", "movie", "id"}
	CategoryColumns = []string{"id", "name", "url"}
	GenreColumns    = []string{"name", "url"}
	StarColumns     = []string{"value"}
	RatingColumns   = []string{"ip", "star", "movie"}
)

type ActorRow struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Age         uint16 `json:"age"`
	Description string `json:"description"`
	GetImage    string `json:"get_image"`
}

func ActorRows(actors []models.Actor) []ActorRow {
	rows := make([]ActorRow, 0, len(actors))
	for _, a := range actors {
		rows = append(rows, ActorRow{
			ID:          a.ID,
			Name:        a.Name,
			Age:         a.Age,
			Description: a.Description,
			GetImage:    ImagePreview(a.Image, ActorPreviewWidth),
		})
	}
	return rows
}

// ActorDetail is the actor edit screen with both filmographies.
type ActorDetail struct {
	Actor    *models.Actor `json:"actor"`
	GetImage string        `json:"get_image"`
}

func NewActorDetail(a *models.Actor) ActorDetail {
	return ActorDetail{Actor: a, GetImage: ImagePreview(a.Image, ActorPreviewWidth)}
}

type ShotRow struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	GetImage    string `json:"get_image"`
	Movie       string `json:"movie"`
}

func NewShotRow(s models.MovieShot) ShotRow {
	row := ShotRow{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		GetImage:    ImagePreview(s.Image, ShotPreviewWidth),
	}
	if s.Movie != nil {
		row.Movie = s.Movie.Title
	}
	return row
}

func ShotRows(shots []models.MovieShot) []ShotRow {
	rows := make([]ShotRow, 0, len(shots))
	for _, s := range shots {
		rows = append(rows, NewShotRow(s))
	}
	return rows
}

type ReviewRow struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Parent *uint  `json:"parent"`
	Movie  string `json:"movie"`
}

func ReviewRows(reviews []models.Review) []ReviewRow {
	rows := make([]ReviewRow, 0, len(reviews))
	for _, r := range reviews {
		row := ReviewRow{ID: r.ID, Name: r.Name, Email: r.Email, Parent: r.ParentID}
		if r.Movie != nil {
			row.Movie = r.Movie.Title
		}
		rows = append(rows, row)
	}
	return rows
}

// ReviewDetail shows every review field; none of them can be edited.
type ReviewDetail struct {
	Review         *models.Review `json:"review"`
	ReadOnlyFields []string       `json:"readonly_fields"`
}

func NewReviewDetail(r *models.Review) ReviewDetail {
	return ReviewDetail{Review: r, ReadOnlyFields: ReviewFields}
}

type CategoryRow struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func CategoryRows(categories []models.Category) []CategoryRow {
	rows := make([]CategoryRow, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, CategoryRow{ID: c.ID, Name: c.Name, URL: c.URL})
	}
	return rows
}

type GenreRow struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func GenreRows(genres []models.Genre) []GenreRow {
	rows := make([]GenreRow, 0, len(genres))
	for _, g := range genres {
		rows = append(rows, GenreRow{ID: g.ID, Name: g.Name, URL: g.URL})
	}
	return rows
}

type StarRow struct {
	ID    uint   `json:"id"`
	Value uint16 `json:"value"`
}

func StarRows(stars []models.RatingStar) []StarRow {
	rows := make([]StarRow, 0, len(stars))
	for _, s := range stars {
		rows = append(rows, StarRow{ID: s.ID, Value: s.Value})
	}
	return rows
}

type RatingRow struct {
	ID    uint   `json:"id"`
	IP    string `json:"ip"`
	Star  uint16 `json:"star"`
	Movie string `json:"movie"`
}

func RatingRows(ratings []models.Rating) []RatingRow {
	rows := make([]RatingRow, 0, len(ratings))
	for _, r := range ratings {
		row := RatingRow{ID: r.ID, IP: r.IP}
		if r.Star != nil {
			row.Star = r.Star.Value
		}
		if r.Movie != nil {
			row.Movie = r.Movie.Title
		}
		rows = append(rows, row)
	}
	return rows
}
