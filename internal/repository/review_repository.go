package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	FindAll(ctx context.Context) ([]models.Review, error)
}

type reviewRepository struct {
	crudRepository[models.Review]
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{crudRepository[models.Review]{newBaseRepository(db), "id"}}
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var review models.Review
	if err := r.db.WithContext(ctx).Preload("Movie").First(&review, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var reviews []models.Review
	err := r.db.WithContext(ctx).Preload("Movie").Order("id").Find(&reviews).Error
	return reviews, err
}

// Delete removes one review; its replies stay as top-level reviews.
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Review{}).Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Review{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
