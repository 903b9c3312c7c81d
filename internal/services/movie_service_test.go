package services

import (
	"context"
	"strconv"
	"testing"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestCreateMovieWithCreditsAndShots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	actor := &models.Actor{Name: "Humphrey Bogart"}
	director := &models.Actor{Name: "Michael Curtiz"}
	require.NoError(t, f.actors.Create(ctx, actor))
	require.NoError(t, f.actors.Create(ctx, director))
	genre := &models.Genre{Name: "Drama", URL: "drama"}
	require.NoError(t, f.genres.Create(ctx, genre))
	category := &models.Category{Name: "Films", URL: "films"}
	require.NoError(t, f.cats.Create(ctx, category))

	movie, err := f.movieService().CreateMovie(ctx, MovieInput{
		Title:       "Casablanca",
		URL:         "casablanca",
		CategoryID:  &category.ID,
		ActorIDs:    []uint{actor.ID, actor.ID},
		DirectorIDs: []uint{director.ID},
		GenreIDs:    []uint{genre.ID},
		Shots:       []ShotInput{{Title: "Cafe", Image: "http://img/cafe.jpg"}},
	})
	require.NoError(t, err)

	assert.Equal(t, uint16(models.DefaultMovieYear), movie.Year)
	assert.False(t, movie.Draft)
	require.Len(t, movie.Actors, 1)
	require.Len(t, movie.Directors, 1)
	assert.Equal(t, "Michael Curtiz", movie.Directors[0].Name)
	require.Len(t, movie.Genres, 1)
	require.Len(t, movie.Shots, 1)
	assert.Equal(t, "Cafe", movie.Shots[0].Title)
	require.NotNil(t, movie.Category)
	assert.Equal(t, "films", movie.Category.URL)
}

func TestCreateMovieRejectsUnknownReferences(t *testing.T) {
	f := newFixture(t)
	svc := f.movieService()
	missing := uint(77)

	_, err := svc.CreateMovie(context.Background(), MovieInput{Title: "X", URL: "x", CategoryID: &missing})
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = svc.CreateMovie(context.Background(), MovieInput{Title: "X", URL: "x", ActorIDs: []uint{missing}})
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = svc.CreateMovie(context.Background(), MovieInput{Title: "X", URL: "x", GenreIDs: []uint{missing}})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestCreateMovieRejectsExistingShotIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.movieService()

	_, err := svc.CreateMovie(ctx, MovieInput{Title: "X", URL: "x", Shots: []ShotInput{{ID: 999, Title: "s"}}})
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = svc.CreateMovie(ctx, MovieInput{Title: "X", URL: "x", DeleteReviewIDs: []uint{1}})
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = f.movies.FindBySlug(ctx, "x")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Zero(t, f.cache.invalidations)
}

func TestUpdateMovieRemovesStaleImages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.movieService()

	movie, err := svc.CreateMovie(ctx, MovieInput{
		Title:  "Casablanca",
		URL:    "casablanca",
		Poster: "http://img/old-poster.jpg",
		Shots: []ShotInput{
			{Title: "Keep", Image: "http://img/keep.jpg"},
			{Title: "Drop", Image: "http://img/drop.jpg"},
		},
	})
	require.NoError(t, err)
	require.Len(t, movie.Shots, 2)
	keep, drop := movie.Shots[0], movie.Shots[1]

	updated, err := svc.UpdateMovie(ctx, movie.ID, MovieInput{
		Title:  "Casablanca",
		URL:    "casablanca",
		Poster: "http://img/new-poster.jpg",
		Year:   1942,
		Shots: []ShotInput{
			{ID: keep.ID, Title: "Kept", Image: keep.Image},
			{ID: drop.ID, Delete: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint16(1942), updated.Year)
	require.Len(t, updated.Shots, 1)
	assert.Equal(t, "Kept", updated.Shots[0].Title)
	assert.ElementsMatch(t, []string{"http://img/old-poster.jpg", "http://img/drop.jpg"}, f.images.removed)
}

func TestUpdateMovieRejectsForeignShot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.movieService()

	other, err := svc.CreateMovie(ctx, MovieInput{Title: "Other", URL: "other", Shots: []ShotInput{{Title: "s"}}})
	require.NoError(t, err)
	movie := f.seedMovie(t, "casablanca", false)

	_, err = svc.UpdateMovie(ctx, movie.ID, MovieInput{
		Title: "Casablanca",
		URL:   "casablanca",
		Shots: []ShotInput{{ID: other.Shots[0].ID, Title: "stolen"}},
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestDeleteMovieRemovesImages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.movieService()

	movie, err := svc.CreateMovie(ctx, MovieInput{
		Title:  "Casablanca",
		URL:    "casablanca",
		Poster: "http://img/poster.jpg",
		Shots:  []ShotInput{{Title: "s", Image: "http://img/shot.jpg"}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMovie(ctx, movie.ID))
	assert.ElementsMatch(t, []string{"http://img/poster.jpg", "http://img/shot.jpg"}, f.images.removed)

	_, err = svc.GetMovie(ctx, movie.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteMovie(ctx, movie.ID), repository.ErrNotFound)
}

func TestSetDraftAndRunAction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.movieService()
	a := f.seedMovie(t, "a", false)
	b := f.seedMovie(t, "b", false)
	f.seedMovie(t, "c", false)

	movie, err := svc.SetDraft(ctx, a.ID, true)
	require.NoError(t, err)
	assert.True(t, movie.Draft)

	_, err = svc.SetDraft(ctx, 999, true)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n, err := svc.RunAction(ctx, ActionUnpublish, []uint{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = svc.RunAction(ctx, ActionPublish, []uint{a.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = svc.RunAction(ctx, ActionPublish, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.RunAction(ctx, "archive", []uint{a.ID})
	assert.ErrorIs(t, err, ErrUnknownAction)

	published, err := f.catalog().ListPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, published, 2)
}

func TestListMoviesClampsPaging(t *testing.T) {
	f := newFixture(t)
	for _, slug := range []string{"a", "b", "c"} {
		f.seedMovie(t, slug, false)
	}

	movies, total, err := f.movieService().ListMovies(context.Background(), repository.MovieFilter{Page: 0, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, movies, 3)
}

func TestInlineFromShots(t *testing.T) {
	inline := InlineFromShots([]ShotInput{
		{ID: 1, Title: "keep"},
		{ID: 2, Delete: true},
		{Delete: true},
		{Title: "new"},
	})
	assert.Equal(t, []uint{2}, inline.DeleteShotIDs)
	require.Len(t, inline.SaveShots, 2)
	assert.Equal(t, uint(1), inline.SaveShots[0].ID)
	assert.Equal(t, "new", inline.SaveShots[1].Title)
}

func TestObjectHelpers(t *testing.T) {
	assert.Equal(t, "movies/poster_abc.jpg", ObjectName("movies", "../poster.jpg", "abc"))

	path, ok := ObjectPath("http://cdn/catalog/movies/a%20b.jpg?x=1", "http://cdn/catalog")
	assert.True(t, ok)
	assert.Equal(t, "movies/a b.jpg", path)

	_, ok = ObjectPath("http://elsewhere/movies/a.jpg", "http://cdn/catalog")
	assert.False(t, ok)
}
