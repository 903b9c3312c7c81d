package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownAction is returned for a bulk action other than publish or unpublish.
	ErrUnknownAction = errors.New("unknown bulk action")
	// ErrInvalidReference is returned when a request names a related record
	// that does not exist.
	ErrInvalidReference = errors.New("invalid reference")
)

// Bulk actions available on the movie list.
const (
	ActionPublish   = "publish"
	ActionUnpublish = "unpublish"
)

// ShotInput is one row of the inline stills editor.
type ShotInput struct {
	ID          uint
	Title       string
	Description string
	Image       string
	Delete      bool
}

// MovieInput carries every editable field of the movie screen.
type MovieInput struct {
	Title         string
	Tagline       string
	Description   string
	Poster        string
	Year          uint16
	Country       string
	WorldPremiere *time.Time
	Budget        uint64
	FeesInUSA     uint64
	FeesInWorld   uint64
	CategoryID    *uint
	URL           string
	Draft         bool

	ActorIDs    []uint
	DirectorIDs []uint
	GenreIDs    []uint

	Shots           []ShotInput
	DeleteReviewIDs []uint
}

type MovieService interface {
	// CRUD operations
	ListMovies(ctx context.Context, filter repository.MovieFilter) ([]models.Movie, int64, error)
	GetMovie(ctx context.Context, id uint) (*models.Movie, error)
	CreateMovie(ctx context.Context, input MovieInput) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id uint, input MovieInput) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uint) error

	// List editing and bulk actions
	SetDraft(ctx context.Context, id uint, draft bool) (*models.Movie, error)
	RunAction(ctx context.Context, action string, ids []uint) (int64, error)
}

type movieService struct {
	repo       repository.MovieRepository
	actors     repository.ActorRepository
	genres     repository.GenreRepository
	categories repository.CategoryRepository
	images     ImageStore
	cache      CatalogCache
	logger     *logrus.Logger
}

func NewMovieService(
	repo repository.MovieRepository,
	actors repository.ActorRepository,
	genres repository.GenreRepository,
	categories repository.CategoryRepository,
	images ImageStore,
	cache CatalogCache,
	logger *logrus.Logger,
) MovieService {
	if cache == nil {
		cache = NopCache{}
	}
	return &movieService{
		repo:       repo,
		actors:     actors,
		genres:     genres,
		categories: categories,
		images:     images,
		cache:      cache,
		logger:     logger,
	}
}

func (s *movieService) ListMovies(ctx context.Context, filter repository.MovieFilter) ([]models.Movie, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	return s.repo.List(ctx, filter)
}

func (s *movieService) GetMovie(ctx context.Context, id uint) (*models.Movie, error) {
	return s.repo.FindForEdit(ctx, id)
}

func (s *movieService) CreateMovie(ctx context.Context, input MovieInput) (*models.Movie, error) {
	credits, err := s.resolveCredits(ctx, input)
	if err != nil {
		return nil, err
	}

	inline := InlineFromShots(input.Shots)
	for _, shot := range inline.SaveShots {
		if shot.ID != 0 {
			return nil, fmt.Errorf("%w: shot %d on a new movie", ErrInvalidReference, shot.ID)
		}
	}
	if len(inline.DeleteShotIDs) > 0 || len(input.DeleteReviewIDs) > 0 {
		return nil, fmt.Errorf("%w: nothing to delete on a new movie", ErrInvalidReference)
	}

	movie := &models.Movie{}
	applyMovieInput(movie, input)

	if err := s.repo.Create(ctx, movie, credits, inline); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: inline row on a new movie", ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	s.cache.Invalidate(ctx)

	s.logger.WithFields(logrus.Fields{"movie_id": movie.ID, "url": movie.URL}).Info("Movie created")
	return s.repo.FindForEdit(ctx, movie.ID)
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, input MovieInput) (*models.Movie, error) {
	existing, err := s.repo.FindForEdit(ctx, id)
	if err != nil {
		return nil, err
	}

	credits, err := s.resolveCredits(ctx, input)
	if err != nil {
		return nil, err
	}

	staleImages := staleMovieImages(existing, input)

	movie := *existing
	movie.Category = nil
	movie.Actors, movie.Directors, movie.Genres = nil, nil, nil
	movie.Shots, movie.Reviews = nil, nil
	applyMovieInput(&movie, input)

	inline := InlineFromShots(input.Shots)
	inline.DeleteReviewIDs = input.DeleteReviewIDs

	if err := s.repo.Update(ctx, &movie, credits, inline); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: inline row does not belong to movie %d", ErrInvalidReference, id)
		}
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	s.cache.Invalidate(ctx)
	removeImages(ctx, s.images, staleImages...)

	s.logger.WithFields(logrus.Fields{"movie_id": id, "url": movie.URL}).Info("Movie updated")
	return s.repo.FindForEdit(ctx, id)
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	existing, err := s.repo.FindForEdit(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)

	images := []string{existing.Poster}
	for _, shot := range existing.Shots {
		images = append(images, shot.Image)
	}
	removeImages(ctx, s.images, images...)

	s.logger.WithField("movie_id", id).Info("Movie deleted")
	return nil
}

// SetDraft edits the draft flag of one movie from the list screen.
func (s *movieService) SetDraft(ctx context.Context, id uint, draft bool) (*models.Movie, error) {
	updated, err := s.repo.SetDraft(ctx, []uint{id}, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to update draft flag: %w", err)
	}
	if updated == 0 {
		return nil, repository.ErrNotFound
	}
	s.cache.Invalidate(ctx)

	return s.repo.FindByID(ctx, id)
}

// RunAction applies a bulk action to the selected movies in one statement
// and returns the number of rows changed.
func (s *movieService) RunAction(ctx context.Context, action string, ids []uint) (int64, error) {
	var draft bool
	switch action {
	case ActionPublish:
		draft = false
	case ActionUnpublish:
		draft = true
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	updated, err := s.repo.SetDraft(ctx, ids, draft)
	if err != nil {
		return 0, fmt.Errorf("failed to %s movies: %w", action, err)
	}
	s.cache.Invalidate(ctx)

	s.logger.WithFields(logrus.Fields{
		"action":   action,
		"selected": len(ids),
		"updated":  updated,
	}).Info("Bulk action applied")

	return updated, nil
}

func (s *movieService) resolveCredits(ctx context.Context, input MovieInput) (*repository.MovieCredits, error) {
	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: category %d", ErrInvalidReference, *input.CategoryID)
			}
			return nil, err
		}
	}

	actors, err := s.findActors(ctx, input.ActorIDs)
	if err != nil {
		return nil, err
	}
	directors, err := s.findActors(ctx, input.DirectorIDs)
	if err != nil {
		return nil, err
	}

	ids := uniqueIDs(input.GenreIDs)
	genres, err := s.genres.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(ids) {
		return nil, fmt.Errorf("%w: unknown genre in %v", ErrInvalidReference, ids)
	}

	return &repository.MovieCredits{Actors: actors, Directors: directors, Genres: genres}, nil
}

func (s *movieService) findActors(ctx context.Context, ids []uint) ([]models.Actor, error) {
	ids = uniqueIDs(ids)
	actors, err := s.actors.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(actors) != len(ids) {
		return nil, fmt.Errorf("%w: unknown actor in %v", ErrInvalidReference, ids)
	}
	return actors, nil
}

func applyMovieInput(movie *models.Movie, input MovieInput) {
	movie.Title = input.Title
	movie.Tagline = input.Tagline
	movie.Description = input.Description
	movie.Poster = input.Poster
	movie.Year = input.Year
	movie.Country = input.Country
	if input.WorldPremiere != nil {
		movie.WorldPremiere = *input.WorldPremiere
	}
	movie.Budget = input.Budget
	movie.FeesInUSA = input.FeesInUSA
	movie.FeesInWorld = input.FeesInWorld
	movie.CategoryID = input.CategoryID
	movie.URL = input.URL
	movie.Draft = input.Draft
	if movie.Year == 0 {
		movie.Year = models.DefaultMovieYear
	}
}

// InlineFromShots splits the inline stills rows into saves and deletions.
func InlineFromShots(rows []ShotInput) repository.InlineChanges {
	var inline repository.InlineChanges
	for _, row := range rows {
		if row.Delete {
			if row.ID != 0 {
				inline.DeleteShotIDs = append(inline.DeleteShotIDs, row.ID)
			}
			continue
		}
		inline.SaveShots = append(inline.SaveShots, models.MovieShot{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Image:       row.Image,
		})
	}
	return inline
}

// staleMovieImages lists stored images the update stops referencing.
func staleMovieImages(existing *models.Movie, input MovieInput) []string {
	var stale []string
	if existing.Poster != "" && existing.Poster != input.Poster {
		stale = append(stale, existing.Poster)
	}

	rows := make(map[uint]ShotInput, len(input.Shots))
	for _, row := range input.Shots {
		if row.ID != 0 {
			rows[row.ID] = row
		}
	}
	for _, shot := range existing.Shots {
		row, ok := rows[shot.ID]
		if !ok || shot.Image == "" {
			continue
		}
		if row.Delete || row.Image != shot.Image {
			stale = append(stale, shot.Image)
		}
	}
	return stale
}

func uniqueIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
