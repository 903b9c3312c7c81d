package services

import (
	"context"
	"testing"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorServiceImageLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewActorService(f.actors, f.images, f.cache, testutil.NewLogger())

	actor, err := svc.CreateActor(ctx, ActorInput{Name: "Bogart", Age: 57, Image: "http://img/a.jpg"})
	require.NoError(t, err)

	_, err = svc.UpdateActor(ctx, actor.ID, ActorInput{Name: "Bogart", Age: 57, Image: "http://img/a.jpg"})
	require.NoError(t, err)
	assert.Empty(t, f.images.removed)

	_, err = svc.UpdateActor(ctx, actor.ID, ActorInput{Name: "Bogart", Age: 57, Image: "http://img/b.jpg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://img/a.jpg"}, f.images.removed)

	require.NoError(t, svc.DeleteActor(ctx, actor.ID))
	assert.Equal(t, []string{"http://img/a.jpg", "http://img/b.jpg"}, f.images.removed)

	_, err = svc.GetActor(ctx, actor.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestShotServiceChecksMovie(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewShotService(f.shots, f.movies, f.images, f.cache, testutil.NewLogger())
	movie := f.seedMovie(t, "casablanca", false)
	other := f.seedMovie(t, "other", false)

	_, err := svc.CreateShot(ctx, 999, ShotInput{Title: "s"})
	assert.ErrorIs(t, err, ErrInvalidReference)

	shot, err := svc.CreateShot(ctx, movie.ID, ShotInput{Title: "s", Image: "http://img/s.jpg"})
	require.NoError(t, err)
	require.NotNil(t, shot.Movie)

	moved, err := svc.UpdateShot(ctx, shot.ID, other.ID, ShotInput{Title: "moved", Image: "http://img/s.jpg"})
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.MovieID)

	list, err := svc.ListShots(ctx, &movie.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, svc.DeleteShot(ctx, shot.ID))
	assert.Equal(t, []string{"http://img/s.jpg"}, f.images.removed)
}

func TestTaxonomyServiceDeleteCategoryKeepsMovies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewTaxonomyService(f.cats, f.genres, f.cache, testutil.NewLogger())

	category, err := svc.CreateCategory(ctx, TaxonomyInput{Name: "Films", URL: "films"})
	require.NoError(t, err)
	movie := &models.Movie{Title: "Casablanca", URL: "casablanca", CategoryID: &category.ID}
	require.NoError(t, f.movies.Create(ctx, movie, nil, repository.InlineChanges{}))

	renamed, err := svc.UpdateCategory(ctx, category.ID, TaxonomyInput{Name: "Feature films", URL: "films"})
	require.NoError(t, err)
	assert.Equal(t, "Feature films", renamed.Name)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))
	got, err := f.movies.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, category.ID), repository.ErrNotFound)

	genre, err := svc.CreateGenre(ctx, TaxonomyInput{Name: "Drama", URL: "drama"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteGenre(ctx, genre.ID))
	genres, err := svc.ListGenres(ctx)
	require.NoError(t, err)
	assert.Empty(t, genres)
}

func TestRatingServiceValidatesReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewRatingService(f.stars, f.ratings, f.movies, f.cache, testutil.NewLogger())
	movie := f.seedMovie(t, "casablanca", false)

	star, err := svc.CreateStar(ctx, 5)
	require.NoError(t, err)

	_, err = svc.CreateRating(ctx, RatingInput{IP: "10.0.0.1", StarID: 99, MovieID: movie.ID})
	assert.ErrorIs(t, err, ErrInvalidReference)

	rating, err := svc.CreateRating(ctx, RatingInput{IP: "10.0.0.1", StarID: star.ID, MovieID: movie.ID})
	require.NoError(t, err)
	require.NotNil(t, rating.Star)
	assert.Equal(t, uint16(5), rating.Star.Value)

	updated, err := svc.UpdateRating(ctx, rating.ID, RatingInput{IP: "10.0.0.2", StarID: star.ID, MovieID: movie.ID})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", updated.IP)

	require.NoError(t, svc.DeleteStar(ctx, star.ID))
	ratings, err := svc.ListRatings(ctx)
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestReviewServiceDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewReviewService(f.reviews, f.cache, testutil.NewLogger())
	movie := f.seedMovie(t, "casablanca", false)

	review := &models.Review{Name: "Ann", Email: "ann@example.com", Text: "Great", MovieID: movie.ID}
	require.NoError(t, f.reviews.Create(ctx, review))

	got, err := svc.GetReview(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)

	require.NoError(t, svc.DeleteReview(ctx, review.ID))
	assert.ErrorIs(t, svc.DeleteReview(ctx, review.ID), repository.ErrNotFound)
	assert.Equal(t, 1, f.cache.invalidations)
}
