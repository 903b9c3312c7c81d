package services

import (
	"context"
	"sync"
	"testing"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/testutil"
	"movie-catalog/internal/utils"

	"github.com/stretchr/testify/require"
)

type fakeImageStore struct {
	mu      sync.Mutex
	removed []string
}

func (f *fakeImageStore) RemoveImage(_ context.Context, ref string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, ref)
}

type countingCache struct {
	NopCache
	invalidations int
}

func (c *countingCache) Invalidate(context.Context) {
	c.invalidations++
}

type fixture struct {
	db      *database.Database
	images  *fakeImageStore
	cache   *countingCache
	movies  repository.MovieRepository
	actors  repository.ActorRepository
	genres  repository.GenreRepository
	cats    repository.CategoryRepository
	shots   repository.ShotRepository
	reviews repository.ReviewRepository
	ratings repository.RatingRepository
	stars   repository.RatingStarRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	return &fixture{
		db:      db,
		images:  &fakeImageStore{},
		cache:   &countingCache{},
		movies:  repository.NewMovieRepository(db),
		actors:  repository.NewActorRepository(db),
		genres:  repository.NewGenreRepository(db),
		cats:    repository.NewCategoryRepository(db),
		shots:   repository.NewShotRepository(db),
		reviews: repository.NewReviewRepository(db),
		ratings: repository.NewRatingRepository(db),
		stars:   repository.NewRatingStarRepository(db),
	}
}

func (f *fixture) catalog() CatalogService {
	return NewCatalogService(f.movies, f.reviews, f.ratings, f.stars, f.cache, utils.NewValidator(), testutil.NewLogger())
}

func (f *fixture) movieService() MovieService {
	return NewMovieService(f.movies, f.actors, f.genres, f.cats, f.images, f.cache, testutil.NewLogger())
}

func (f *fixture) seedMovie(t *testing.T, slug string, draft bool) *models.Movie {
	t.Helper()
	movie := &models.Movie{Title: slug, URL: slug, Draft: draft}
	require.NoError(t, f.movies.Create(context.Background(), movie, nil, repository.InlineChanges{}))
	return movie
}
