package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidReview marks a review submission that failed validation.
	ErrInvalidReview = errors.New("invalid review")
	// ErrStarNotFound is returned when a rating names an unknown star.
	ErrStarNotFound = errors.New("rating star not found")
)

// ReviewForm is the visitor review submission. Parent is the optional id of
// the review being answered.
type ReviewForm struct {
	Name   string `form:"name" json:"name" validate:"required,max=100"`
	Email  string `form:"email" json:"email" validate:"required,email,max=254"`
	Text   string `form:"text" json:"text" validate:"required,max=5000"`
	Parent string `form:"parent" json:"parent" validate:"omitempty,numeric"`
}

type CatalogService interface {
	ListPublished(ctx context.Context) ([]models.Movie, error)
	GetMovieDetail(ctx context.Context, slug string) (*MovieDetail, error)
	SubmitReview(ctx context.Context, movieID uint, form ReviewForm) (*models.Movie, *models.Review, error)
	RateMovie(ctx context.Context, movieID, starID uint, ip string) (*models.Rating, error)
	ListStars(ctx context.Context) ([]models.RatingStar, error)
}

type catalogService struct {
	movies    repository.MovieRepository
	reviews   repository.ReviewRepository
	ratings   repository.RatingRepository
	stars     repository.RatingStarRepository
	cache     CatalogCache
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewCatalogService(
	movies repository.MovieRepository,
	reviews repository.ReviewRepository,
	ratings repository.RatingRepository,
	stars repository.RatingStarRepository,
	cache CatalogCache,
	v *validator.Validate,
	logger *logrus.Logger,
) CatalogService {
	if cache == nil {
		cache = NopCache{}
	}
	return &catalogService{
		movies:    movies,
		reviews:   reviews,
		ratings:   ratings,
		stars:     stars,
		cache:     cache,
		validator: v,
		logger:    logger,
	}
}

func (s *catalogService) ListPublished(ctx context.Context) ([]models.Movie, error) {
	if movies, ok := s.cache.GetPublished(ctx); ok {
		return movies, nil
	}

	movies, err := s.movies.FindPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list published movies: %w", err)
	}

	s.cache.SetPublished(ctx, movies)
	return movies, nil
}

// GetMovieDetail looks a movie up by slug. Drafts are not filtered out:
// anyone who knows the slug of an unpublished movie can read it.
func (s *catalogService) GetMovieDetail(ctx context.Context, slug string) (*MovieDetail, error) {
	if detail, ok := s.cache.GetDetail(ctx, slug); ok {
		return detail, nil
	}

	movie, err := s.movies.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	summary, err := s.movies.GetRatingSummary(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ratings: %w", err)
	}

	detail := &MovieDetail{Movie: *movie, Rating: *summary}
	s.cache.SetDetail(ctx, slug, detail)
	return detail, nil
}

// SubmitReview resolves the movie first, so an unknown movie is reported as
// repository.ErrNotFound whatever the form holds. The returned movie is set
// whenever it exists, including when the form is rejected with
// ErrInvalidReview. Replies may only answer top-level reviews.
func (s *catalogService) SubmitReview(ctx context.Context, movieID uint, form ReviewForm) (*models.Movie, *models.Review, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, nil, err
	}

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Parent = strings.TrimSpace(form.Parent)

	if err := s.validator.StructCtx(ctx, form); err != nil {
		return movie, nil, fmt.Errorf("%w: %s", ErrInvalidReview, utils.ValidationMessage(err))
	}

	review := &models.Review{
		Name:    form.Name,
		Email:   form.Email,
		Text:    form.Text,
		MovieID: movie.ID,
	}

	if form.Parent != "" {
		parentID, err := strconv.ParseUint(form.Parent, 10, 32)
		if err != nil {
			return movie, nil, fmt.Errorf("%w: parent must be a review id", ErrInvalidReview)
		}
		parent, err := s.reviews.FindByID(ctx, uint(parentID))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return movie, nil, fmt.Errorf("%w: parent review %d does not exist", ErrInvalidReview, parentID)
			}
			return movie, nil, err
		}
		if parent.MovieID != movie.ID {
			return movie, nil, fmt.Errorf("%w: parent review %d belongs to another movie", ErrInvalidReview, parentID)
		}
		if parent.ParentID != nil {
			return movie, nil, fmt.Errorf("%w: review %d is already a reply", ErrInvalidReview, parentID)
		}
		review.ParentID = &parent.ID
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return movie, nil, fmt.Errorf("failed to save review: %w", err)
	}
	s.cache.Invalidate(ctx)

	s.logger.WithFields(logrus.Fields{
		"movie_id":  movie.ID,
		"review_id": review.ID,
		"parent_id": review.ParentID,
	}).Info("Review submitted")

	return movie, review, nil
}

// RateMovie records the star given by ip, replacing any earlier rating of
// the same movie from that ip.
func (s *catalogService) RateMovie(ctx context.Context, movieID, starID uint, ip string) (*models.Rating, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	star, err := s.stars.FindByID(ctx, starID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStarNotFound
		}
		return nil, err
	}

	rating := &models.Rating{IP: ip, StarID: star.ID, MovieID: movie.ID}
	if err := s.ratings.Upsert(ctx, rating); err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}
	rating.Star = star
	s.cache.Invalidate(ctx)

	s.logger.WithFields(logrus.Fields{
		"movie_id": movie.ID,
		"star":     star.Value,
	}).Info("Movie rated")

	return rating, nil
}

func (s *catalogService) ListStars(ctx context.Context) ([]models.RatingStar, error) {
	return s.stars.FindAll(ctx)
}
