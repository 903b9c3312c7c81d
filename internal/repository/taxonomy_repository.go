package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
}

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	Update(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Genre, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
}

type categoryRepository struct {
	crudRepository[models.Category]
}

func NewCategoryRepository(db *database.Database) CategoryRepository {
	return &categoryRepository{crudRepository[models.Category]{newBaseRepository(db), "id"}}
}

// Delete removes the category and detaches its movies.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Movie{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

type genreRepository struct {
	crudRepository[models.Genre]
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{crudRepository[models.Genre]{newBaseRepository(db), "name"}}
}

func (r *genreRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&genres).Error
	return genres, err
}

// Delete removes the genre and its movie links; the movies stay.
func (r *genreRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genre := models.Genre{ID: id}
		if err := tx.First(&genre).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Model(&genre).Association("Movies").Clear(); err != nil {
			return err
		}
		return tx.Delete(&genre).Error
	})
}
