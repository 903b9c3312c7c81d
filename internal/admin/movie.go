package admin

import (
	"movie-catalog/internal/models"
)

var MovieColumns = []string{"title", "category", "url", "draft"}

// MovieFieldsets is the layout of the movie edit screen, top to bottom.
var MovieFieldsets = []Fieldset{
	{Title: "Title and tagline", Fields: []string{"title", "tagline"}},
	{Title: "Description and poster", Fields: []string{"description", "poster", "get_image"}},
	{Fields: []string{"year", "world_premiere", "country"}},
	{Title: "Actors, directors, genres and category", Fields: []string{"actors", "directors", "genres", "category"}, Collapsed: true},
	{Title: "Budget and box office", Fields: []string{"budget", "fees_in_usa", "fees_in_world"}},
	{Fields: []string{"url", "draft"}},
}

var MovieWidgets = map[string]string{"description": WidgetRichText}

var (
	ShotInlineFields = []string{"title", "description", "image", "get_image"}
	ReviewFields     = []string{"name", "email", "text", "movie", "parent"}
)

type MovieRow struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	URL      string `json:"url"`
	Draft    bool   `json:"draft"`
}

func NewMovieRow(m models.Movie) MovieRow {
	row := MovieRow{ID: m.ID, Title: m.Title, URL: m.URL, Draft: m.Draft}
	if m.Category != nil {
		row.Category = m.Category.Name
	}
	return row
}

func MovieRows(movies []models.Movie) []MovieRow {
	rows := make([]MovieRow, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, NewMovieRow(m))
	}
	return rows
}

// MovieScreen builds the movie edit screen. A nil movie gives the empty
// create form: the same layout with one blank slot per inline.
func MovieScreen(movie *models.Movie) Screen {
	screen := Screen{
		Fieldsets: MovieFieldsets,
		Widgets:   MovieWidgets,
		Inlines: []Inline{
			{
				Name:           "shots",
				Style:          InlineTabular,
				Extra:          1,
				Fields:         ShotInlineFields,
				ReadOnlyFields: []string{"get_image"},
				Rows:           []map[string]any{},
			},
			{
				Name:           "reviews",
				Style:          InlineStacked,
				Extra:          1,
				Fields:         ReviewFields,
				ReadOnlyFields: ReviewFields,
				Rows:           []map[string]any{},
			},
		},
	}
	if movie == nil {
		return screen
	}

	screen.Values = movie
	screen.Preview = ImagePreview(movie.Poster, PosterPreviewWidth)
	for _, shot := range movie.Shots {
		screen.Inlines[0].Rows = append(screen.Inlines[0].Rows, map[string]any{
			"id":          shot.ID,
			"title":       shot.Title,
			"description": shot.Description,
			"image":       shot.Image,
			"get_image":   ImagePreview(shot.Image, ShotPreviewWidth),
		})
	}
	for _, review := range movie.Reviews {
		screen.Inlines[1].Rows = append(screen.Inlines[1].Rows, map[string]any{
			"id":     review.ID,
			"name":   review.Name,
			"email":  review.Email,
			"text":   review.Text,
			"movie":  movie.Title,
			"parent": review.ParentID,
		})
	}
	return screen
}
