package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type ShotRepository interface {
	Create(ctx context.Context, shot *models.MovieShot) error
	Update(ctx context.Context, shot *models.MovieShot) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.MovieShot, error)
	FindAll(ctx context.Context, movieID *uint) ([]models.MovieShot, error)
}

type shotRepository struct {
	crudRepository[models.MovieShot]
}

func NewShotRepository(db *database.Database) ShotRepository {
	return &shotRepository{crudRepository[models.MovieShot]{newBaseRepository(db), "id"}}
}

func (r *shotRepository) FindByID(ctx context.Context, id uint) (*models.MovieShot, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shot models.MovieShot
	if err := r.db.WithContext(ctx).Preload("Movie").First(&shot, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &shot, nil
}

func (r *shotRepository) FindAll(ctx context.Context, movieID *uint) ([]models.MovieShot, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Preload("Movie").Order("id")
	if movieID != nil {
		query = query.Where("movie_id = ?", *movieID)
	}

	var shots []models.MovieShot
	err := query.Find(&shots).Error
	return shots, err
}

func (r *shotRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.MovieShot{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
