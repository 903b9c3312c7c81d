package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type ShotService interface {
	ListShots(ctx context.Context, movieID *uint) ([]models.MovieShot, error)
	GetShot(ctx context.Context, id uint) (*models.MovieShot, error)
	CreateShot(ctx context.Context, movieID uint, input ShotInput) (*models.MovieShot, error)
	UpdateShot(ctx context.Context, id, movieID uint, input ShotInput) (*models.MovieShot, error)
	DeleteShot(ctx context.Context, id uint) error
}

type shotService struct {
	repo   repository.ShotRepository
	movies repository.MovieRepository
	images ImageStore
	cache  CatalogCache
	logger *logrus.Logger
}

func NewShotService(repo repository.ShotRepository, movies repository.MovieRepository, images ImageStore, cache CatalogCache, logger *logrus.Logger) ShotService {
	if cache == nil {
		cache = NopCache{}
	}
	return &shotService{repo: repo, movies: movies, images: images, cache: cache, logger: logger}
}

func (s *shotService) ListShots(ctx context.Context, movieID *uint) ([]models.MovieShot, error) {
	return s.repo.FindAll(ctx, movieID)
}

func (s *shotService) GetShot(ctx context.Context, id uint) (*models.MovieShot, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *shotService) CreateShot(ctx context.Context, movieID uint, input ShotInput) (*models.MovieShot, error) {
	if err := s.checkMovie(ctx, movieID); err != nil {
		return nil, err
	}

	shot := &models.MovieShot{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		MovieID:     movieID,
	}
	if err := s.repo.Create(ctx, shot); err != nil {
		return nil, fmt.Errorf("failed to create shot: %w", err)
	}
	s.cache.Invalidate(ctx)

	return s.repo.FindByID(ctx, shot.ID)
}

func (s *shotService) UpdateShot(ctx context.Context, id, movieID uint, input ShotInput) (*models.MovieShot, error) {
	shot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkMovie(ctx, movieID); err != nil {
		return nil, err
	}
	oldImage := shot.Image

	shot.Movie = nil
	shot.Title = input.Title
	shot.Description = input.Description
	shot.Image = input.Image
	shot.MovieID = movieID

	if err := s.repo.Update(ctx, shot); err != nil {
		return nil, fmt.Errorf("failed to update shot: %w", err)
	}
	s.cache.Invalidate(ctx)
	if oldImage != shot.Image {
		removeImages(ctx, s.images, oldImage)
	}

	return s.repo.FindByID(ctx, id)
}

func (s *shotService) DeleteShot(ctx context.Context, id uint) error {
	shot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	removeImages(ctx, s.images, shot.Image)
	return nil
}

func (s *shotService) checkMovie(ctx context.Context, movieID uint) error {
	if _, err := s.movies.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: movie %d", ErrInvalidReference, movieID)
		}
		return err
	}
	return nil
}
