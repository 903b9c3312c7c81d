package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type RatingInput struct {
	IP      string
	StarID  uint
	MovieID uint
}

// RatingService backs the rating star and rating screens of the back office.
type RatingService interface {
	ListStars(ctx context.Context) ([]models.RatingStar, error)
	GetStar(ctx context.Context, id uint) (*models.RatingStar, error)
	CreateStar(ctx context.Context, value uint16) (*models.RatingStar, error)
	UpdateStar(ctx context.Context, id uint, value uint16) (*models.RatingStar, error)
	DeleteStar(ctx context.Context, id uint) error

	ListRatings(ctx context.Context) ([]models.Rating, error)
	GetRating(ctx context.Context, id uint) (*models.Rating, error)
	CreateRating(ctx context.Context, input RatingInput) (*models.Rating, error)
	UpdateRating(ctx context.Context, id uint, input RatingInput) (*models.Rating, error)
	DeleteRating(ctx context.Context, id uint) error
}

type ratingService struct {
	stars   repository.RatingStarRepository
	ratings repository.RatingRepository
	movies  repository.MovieRepository
	cache   CatalogCache
	logger  *logrus.Logger
}

func NewRatingService(stars repository.RatingStarRepository, ratings repository.RatingRepository, movies repository.MovieRepository, cache CatalogCache, logger *logrus.Logger) RatingService {
	if cache == nil {
		cache = NopCache{}
	}
	return &ratingService{stars: stars, ratings: ratings, movies: movies, cache: cache, logger: logger}
}

func (s *ratingService) ListStars(ctx context.Context) ([]models.RatingStar, error) {
	return s.stars.FindAll(ctx)
}

func (s *ratingService) GetStar(ctx context.Context, id uint) (*models.RatingStar, error) {
	return s.stars.FindByID(ctx, id)
}

func (s *ratingService) CreateStar(ctx context.Context, value uint16) (*models.RatingStar, error) {
	star := &models.RatingStar{Value: value}
	if err := s.stars.Create(ctx, star); err != nil {
		return nil, fmt.Errorf("failed to create rating star: %w", err)
	}
	return star, nil
}

func (s *ratingService) UpdateStar(ctx context.Context, id uint, value uint16) (*models.RatingStar, error) {
	star, err := s.stars.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	star.Value = value
	if err := s.stars.Update(ctx, star); err != nil {
		return nil, fmt.Errorf("failed to update rating star: %w", err)
	}
	s.cache.Invalidate(ctx)
	return star, nil
}

func (s *ratingService) DeleteStar(ctx context.Context, id uint) error {
	if err := s.stars.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *ratingService) ListRatings(ctx context.Context) ([]models.Rating, error) {
	return s.ratings.FindAll(ctx)
}

func (s *ratingService) GetRating(ctx context.Context, id uint) (*models.Rating, error) {
	return s.ratings.FindByID(ctx, id)
}

func (s *ratingService) CreateRating(ctx context.Context, input RatingInput) (*models.Rating, error) {
	if err := s.checkRefs(ctx, input); err != nil {
		return nil, err
	}
	rating := &models.Rating{IP: input.IP, StarID: input.StarID, MovieID: input.MovieID}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}
	s.cache.Invalidate(ctx)
	return s.ratings.FindByID(ctx, rating.ID)
}

func (s *ratingService) UpdateRating(ctx context.Context, id uint, input RatingInput) (*models.Rating, error) {
	rating, err := s.ratings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, input); err != nil {
		return nil, err
	}
	rating.Star, rating.Movie = nil, nil
	rating.IP, rating.StarID, rating.MovieID = input.IP, input.StarID, input.MovieID

	if err := s.ratings.Update(ctx, rating); err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}
	s.cache.Invalidate(ctx)
	return s.ratings.FindByID(ctx, id)
}

func (s *ratingService) DeleteRating(ctx context.Context, id uint) error {
	if err := s.ratings.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	s.logger.WithField("rating_id", id).Info("Rating deleted")
	return nil
}

func (s *ratingService) checkRefs(ctx context.Context, input RatingInput) error {
	if _, err := s.stars.FindByID(ctx, input.StarID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: star %d", ErrInvalidReference, input.StarID)
		}
		return err
	}
	if _, err := s.movies.FindByID(ctx, input.MovieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: movie %d", ErrInvalidReference, input.MovieID)
		}
		return err
	}
	return nil
}
