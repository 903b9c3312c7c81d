package repository

import (
	"context"
	"strings"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieFilter narrows the back-office movie list.
type MovieFilter struct {
	CategoryID *uint
	Year       *uint16
	Search     string
	Page       int
	Limit      int
}

// MovieCredits are the many-to-many sets saved with a movie. A nil slice
// clears the relation.
type MovieCredits struct {
	Actors    []models.Actor
	Directors []models.Actor
	Genres    []models.Genre
}

// InlineChanges are the related rows edited on the movie screen.
type InlineChanges struct {
	SaveShots       []models.MovieShot
	DeleteShotIDs   []uint
	DeleteReviewIDs []uint
}

type MovieRepository interface {
	// CRUD operations
	Create(ctx context.Context, movie *models.Movie, credits *MovieCredits, inline InlineChanges) error
	Update(ctx context.Context, movie *models.Movie, credits *MovieCredits, inline InlineChanges) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindForEdit(ctx context.Context, id uint) (*models.Movie, error)
	List(ctx context.Context, filter MovieFilter) ([]models.Movie, int64, error)

	// Public catalog
	FindPublished(ctx context.Context) ([]models.Movie, error)
	FindBySlug(ctx context.Context, slug string) (*models.Movie, error)
	GetRatingSummary(ctx context.Context, movieID uint) (*models.RatingSummary, error)

	// Bulk actions
	SetDraft(ctx context.Context, ids []uint, draft bool) (int64, error)
}

type movieRepository struct {
	baseRepository
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{newBaseRepository(db)}
}

// Create saves a new movie with its credits and inline stills in one
// transaction. Inline rows must be new.
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie, credits *MovieCredits, inline InlineChanges) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(movie).Error; err != nil {
			return err
		}
		if err := replaceCredits(tx, movie, credits); err != nil {
			return err
		}
		return applyInlineChanges(tx, movie.ID, inline)
	})
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie, credits *MovieCredits, inline InlineChanges) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(movie).Error; err != nil {
			return err
		}
		if err := replaceCredits(tx, movie, credits); err != nil {
			return err
		}
		return applyInlineChanges(tx, movie.ID, inline)
	})
}

func replaceCredits(tx *gorm.DB, movie *models.Movie, credits *MovieCredits) error {
	if credits == nil {
		return nil
	}
	if err := tx.Model(movie).Association("Actors").Replace(credits.Actors); err != nil {
		return err
	}
	if err := tx.Model(movie).Association("Directors").Replace(credits.Directors); err != nil {
		return err
	}
	return tx.Model(movie).Association("Genres").Replace(credits.Genres)
}

func applyInlineChanges(tx *gorm.DB, movieID uint, inline InlineChanges) error {
	for i := range inline.SaveShots {
		shot := &inline.SaveShots[i]
		shot.MovieID = movieID
		if shot.ID == 0 {
			if err := tx.Create(shot).Error; err != nil {
				return err
			}
			continue
		}
		result := tx.Model(&models.MovieShot{}).
			Where("id = ? AND movie_id = ?", shot.ID, movieID).
			Updates(map[string]interface{}{
				"title":       shot.Title,
				"description": shot.Description,
				"image":       shot.Image,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
	}

	if len(inline.DeleteShotIDs) > 0 {
		if err := tx.Where("movie_id = ? AND id IN ?", movieID, inline.DeleteShotIDs).
			Delete(&models.MovieShot{}).Error; err != nil {
			return err
		}
	}

	if len(inline.DeleteReviewIDs) > 0 {
		var owned []uint
		if err := tx.Model(&models.Review{}).
			Where("movie_id = ? AND id IN ?", movieID, inline.DeleteReviewIDs).
			Pluck("id", &owned).Error; err != nil {
			return err
		}
		if len(owned) != len(idSet(inline.DeleteReviewIDs)) {
			return ErrNotFound
		}
		if err := tx.Model(&models.Review{}).Where("parent_id IN ?", owned).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", owned).Delete(&models.Review{}).Error; err != nil {
			return err
		}
	}
	return nil
}

func idSet(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Delete removes the movie, its stills, ratings, reviews and credit links.
func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		movie := models.Movie{ID: id}
		if err := tx.First(&movie).Error; err != nil {
			return notFound(err)
		}
		for _, relation := range []string{"Actors", "Directors", "Genres"} {
			if err := tx.Model(&movie).Association(relation).Clear(); err != nil {
				return err
			}
		}
		// Replies may point at reviews of another movie.
		if err := tx.Model(&models.Review{}).
			Where("parent_id IN (?)", tx.Model(&models.Review{}).Select("id").Where("movie_id = ?", id)).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		for _, child := range []interface{}{&models.Review{}, &models.Rating{}, &models.MovieShot{}} {
			if err := tx.Where("movie_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&movie).Error
	})
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Actors").Preload("Directors").Preload("Genres").
		First(&movie, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &movie, nil
}

// FindForEdit loads everything the movie edit screen shows, including the
// inline stills and reviews.
func (r *movieRepository) FindForEdit(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Actors").Preload("Directors").Preload("Genres").
		Preload("Shots", func(db *gorm.DB) *gorm.DB { return db.Order("movie_shots.id") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.id") }).
		First(&movie, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &movie, nil
}

func (r *movieRepository) List(ctx context.Context, filter MovieFilter) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&models.Movie{}).
			Joins("LEFT JOIN categories ON categories.id = movies.category_id")

		if filter.CategoryID != nil {
			query = query.Where("movies.category_id = ?", *filter.CategoryID)
		}
		if filter.Year != nil {
			query = query.Where("movies.year = ?", *filter.Year)
		}
		if search := strings.TrimSpace(filter.Search); search != "" {
			searchPattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(movies.title) LIKE ? OR LOWER(categories.name) LIKE ?",
				searchPattern, searchPattern)
		}
		return query
	}

	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := filtered().Preload("Category").Order("movies.id")
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}
	if err := query.Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) FindPublished(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Where("draft = ?", false).Order("id").Find(&movies).Error
	return movies, err
}

// FindBySlug loads a movie by its url for the public detail page. Drafts
// are returned as well.
func (r *movieRepository) FindBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Actors").Preload("Directors").Preload("Genres").
		Preload("Shots", func(db *gorm.DB) *gorm.DB { return db.Order("movie_shots.id") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Where("reviews.parent_id IS NULL").Order("reviews.id")
		}).
		Preload("Reviews.Children", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.id") }).
		Where("url = ?", slug).
		First(&movie).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &movie, nil
}

func (r *movieRepository) GetRatingSummary(ctx context.Context, movieID uint) (*models.RatingSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var summary models.RatingSummary
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(rating_stars.value), 0) AS average, COUNT(ratings.id) AS count").
		Joins("JOIN rating_stars ON rating_stars.id = ratings.star_id").
		Where("ratings.movie_id = ?", movieID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// SetDraft flips the draft flag on all given movies in one statement and
// returns the number of rows updated.
func (r *movieRepository) SetDraft(ctx context.Context, ids []uint, draft bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.Movie{}).Where("id IN ?", ids).Update("draft", draft)
	return result.RowsAffected, result.Error
}
