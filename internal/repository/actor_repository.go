package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *models.Actor) error
	Update(ctx context.Context, actor *models.Actor) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Actor, error)
	FindWithFilmography(ctx context.Context, id uint) (*models.Actor, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Actor, error)
	FindAll(ctx context.Context) ([]models.Actor, error)
}

type actorRepository struct {
	crudRepository[models.Actor]
}

func NewActorRepository(db *database.Database) ActorRepository {
	return &actorRepository{crudRepository[models.Actor]{newBaseRepository(db), "id"}}
}

// FindWithFilmography loads the actor with the movies they played in and
// the movies they directed.
func (r *actorRepository) FindWithFilmography(ctx context.Context, id uint) (*models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actor models.Actor
	err := r.db.WithContext(ctx).
		Preload("ActedIn", func(db *gorm.DB) *gorm.DB { return db.Order("movies.year DESC, movies.id") }).
		Preload("Directed", func(db *gorm.DB) *gorm.DB { return db.Order("movies.year DESC, movies.id") }).
		First(&actor, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &actor, nil
}

func (r *actorRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Actor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actors []models.Actor
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&actors).Error
	return actors, err
}

// Delete removes the actor together with both credit lists.
func (r *actorRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		actor := models.Actor{ID: id}
		if err := tx.First(&actor).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Model(&actor).Association("ActedIn").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&actor).Association("Directed").Clear(); err != nil {
			return err
		}
		return tx.Delete(&actor).Error
	})
}
