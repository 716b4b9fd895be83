package repository

import (
	"context"
	"fmt"

	"libraryhub/internal/http-api/models"

	"gorm.io/gorm"
)

// MovieRepository handles database operations for movies and their watching
// progress rows. Every query is scoped to the owning user id.
type MovieRepository interface {
	List(ctx context.Context, userID, search string, shelfID *string) ([]models.Movie, error)
	FindByID(ctx context.Context, id, userID string) (*models.Movie, error)
	Create(ctx context.Context, movie *models.Movie, categoryIDs []string) error
	Save(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id, userID string) error
	ReplaceCategories(ctx context.Context, movieID string, categoryIDs []string) error
	SaveWatchingProgress(ctx context.Context, progress *models.WatchingProgress) error
	CountForUser(ctx context.Context, userID string) (int64, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) List(ctx context.Context, userID, search string, shelfID *string) ([]models.Movie, error) {
	var movies []models.Movie
	q := r.db.WithContext(ctx).
		Preload("Shelf").
		Preload("MovieCategories.Category").
		Preload("WatchingProgress").
		Where("user_id = ?", userID)

	if search != "" {
		p := "%" + search + "%"
		q = q.Where("title ILIKE ? OR director ILIKE ?", p, p)
	}
	if shelfID != nil {
		q = q.Where("shelf_id = ?", *shelfID)
	}

	if err := q.Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id, userID string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Shelf").
		Preload("MovieCategories.Category").
		Preload("WatchingProgress").
		Where("id = ? AND user_id = ?", id, userID).
		First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// Create inserts the movie, its category joins and the initial watching
// progress row in one transaction. The progress row always starts out as
// not_started with a zero watch count.
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie, categoryIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(movie).Error; err != nil {
			return fmt.Errorf("create movie: %w", err)
		}
		for _, categoryID := range categoryIDs {
			if err := tx.Create(&models.MovieCategory{MovieID: movie.ID, CategoryID: categoryID}).Error; err != nil {
				return fmt.Errorf("attach category: %w", err)
			}
		}
		progress := &models.WatchingProgress{
			MovieID:    movie.ID,
			Status:     models.WatchingStatusNotStarted,
			WatchCount: 0,
		}
		if err := tx.Create(progress).Error; err != nil {
			return fmt.Errorf("create watching progress: %w", err)
		}
		movie.WatchingProgress = progress
		return nil
	})
}

func (r *movieRepository) Save(ctx context.Context, movie *models.Movie) error {
	if err := r.db.WithContext(ctx).Save(movie).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Movie{})
	if result.Error != nil {
		return fmt.Errorf("delete movie: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceCategories clears the existing associations and inserts the supplied
// set. Full replace, never a merge.
func (r *movieRepository) ReplaceCategories(ctx context.Context, movieID string, categoryIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", movieID).Delete(&models.MovieCategory{}).Error; err != nil {
			return fmt.Errorf("clear categories: %w", err)
		}
		for _, categoryID := range categoryIDs {
			if err := tx.Create(&models.MovieCategory{MovieID: movieID, CategoryID: categoryID}).Error; err != nil {
				return fmt.Errorf("attach category: %w", err)
			}
		}
		return nil
	})
}

func (r *movieRepository) CountForUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *movieRepository) SaveWatchingProgress(ctx context.Context, progress *models.WatchingProgress) error {
	if err := r.db.WithContext(ctx).Save(progress).Error; err != nil {
		return fmt.Errorf("save watching progress: %w", err)
	}
	return nil
}
