package services

import (
	"context"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// TaxonomyInput is shared by categories and genres.
type TaxonomyInput struct {
	Name        string
	Description string
	URL         string
}

type TaxonomyService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, input TaxonomyInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, input TaxonomyInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	ListGenres(ctx context.Context) ([]models.Genre, error)
	GetGenre(ctx context.Context, id uint) (*models.Genre, error)
	CreateGenre(ctx context.Context, input TaxonomyInput) (*models.Genre, error)
	UpdateGenre(ctx context.Context, id uint, input TaxonomyInput) (*models.Genre, error)
	DeleteGenre(ctx context.Context, id uint) error
}

type taxonomyService struct {
	categories repository.CategoryRepository
	genres     repository.GenreRepository
	cache      CatalogCache
	logger     *logrus.Logger
}

func NewTaxonomyService(categories repository.CategoryRepository, genres repository.GenreRepository, cache CatalogCache, logger *logrus.Logger) TaxonomyService {
	if cache == nil {
		cache = NopCache{}
	}
	return &taxonomyService{categories: categories, genres: genres, cache: cache, logger: logger}
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *taxonomyService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *taxonomyService) CreateCategory(ctx context.Context, input TaxonomyInput) (*models.Category, error) {
	category := &models.Category{Name: input.Name, Description: input.Description, URL: input.URL}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *taxonomyService) UpdateCategory(ctx context.Context, id uint, input TaxonomyInput) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name, category.Description, category.URL = input.Name, input.Description, input.URL

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	s.cache.Invalidate(ctx)
	return category, nil
}

func (s *taxonomyService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	s.logger.WithField("category_id", id).Info("Category deleted")
	return nil
}

func (s *taxonomyService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genres.FindAll(ctx)
}

func (s *taxonomyService) GetGenre(ctx context.Context, id uint) (*models.Genre, error) {
	return s.genres.FindByID(ctx, id)
}

func (s *taxonomyService) CreateGenre(ctx context.Context, input TaxonomyInput) (*models.Genre, error) {
	genre := &models.Genre{Name: input.Name, Description: input.Description, URL: input.URL}
	if err := s.genres.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return genre, nil
}

func (s *taxonomyService) UpdateGenre(ctx context.Context, id uint, input TaxonomyInput) (*models.Genre, error) {
	genre, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	genre.Name, genre.Description, genre.URL = input.Name, input.Description, input.URL

	if err := s.genres.Update(ctx, genre); err != nil {
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}
	s.cache.Invalidate(ctx)
	return genre, nil
}

func (s *taxonomyService) DeleteGenre(ctx context.Context, id uint) error {
	if err := s.genres.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	s.logger.WithField("genre_id", id).Info("Genre deleted")
	return nil
}
