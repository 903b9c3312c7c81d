package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// ReviewService is the staff view of visitor reviews: they can be read and
// deleted, never edited.
type ReviewService interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
	GetReview(ctx context.Context, id uint) (*models.Review, error)
	DeleteReview(ctx context.Context, id uint) error
}

type reviewService struct {
	repo   repository.ReviewRepository
	cache  CatalogCache
	logger *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, cache CatalogCache, logger *logrus.Logger) ReviewService {
	if cache == nil {
		cache = NopCache{}
	}
	return &reviewService{repo: repo, cache: cache, logger: logger}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.repo.FindAll(ctx)
}

func (s *reviewService) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *reviewService) DeleteReview(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	s.logger.WithField("review_id", id).Info("Review deleted")
	return nil
}
