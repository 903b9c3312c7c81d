package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingStarRepository interface {
	Create(ctx context.Context, star *models.RatingStar) error
	Update(ctx context.Context, star *models.RatingStar) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.RatingStar, error)
	FindAll(ctx context.Context) ([]models.RatingStar, error)
}

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
	Upsert(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Rating, error)
	FindAll(ctx context.Context) ([]models.Rating, error)
}

type ratingStarRepository struct {
	crudRepository[models.RatingStar]
}

func NewRatingStarRepository(db *database.Database) RatingStarRepository {
	return &ratingStarRepository{crudRepository[models.RatingStar]{newBaseRepository(db), "value"}}
}

// Delete removes the star and every rating that used it.
func (r *ratingStarRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("star_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.RatingStar{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

type ratingRepository struct {
	crudRepository[models.Rating]
}

func NewRatingRepository(db *database.Database) RatingRepository {
	return &ratingRepository{crudRepository[models.Rating]{newBaseRepository(db), "id"}}
}

// Upsert stores the rating, replacing the star of an earlier rating from the
// same IP for the same movie.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ip"}, {Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"star_id", "updated_at"}),
	}).Omit(clause.Associations).Create(rating).Error
	if err != nil {
		return err
	}

	// The conflict path does not report the existing id on every dialect.
	rating.ID = 0
	return db.Where("ip = ? AND movie_id = ?", rating.IP, rating.MovieID).First(rating).Error
}

func (r *ratingRepository) FindByID(ctx context.Context, id uint) (*models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rating models.Rating
	if err := r.db.WithContext(ctx).Preload("Star").Preload("Movie").First(&rating, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &rating, nil
}

func (r *ratingRepository) FindAll(ctx context.Context) ([]models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []models.Rating
	err := r.db.WithContext(ctx).Preload("Star").Preload("Movie").Order("id").Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Rating{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
