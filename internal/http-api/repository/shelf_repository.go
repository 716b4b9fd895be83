package repository

import (
	"context"
	"fmt"

	"libraryhub/internal/http-api/models"

	"gorm.io/gorm"
)

// ShelfRepository handles database operations for shelves.
type ShelfRepository interface {
	List(ctx context.Context, userID string, includeBooks bool) ([]models.Shelf, error)
	FindByID(ctx context.Context, id, userID string) (*models.Shelf, error)
	Create(ctx context.Context, shelf *models.Shelf) error
	Save(ctx context.Context, shelf *models.Shelf) error
	Delete(ctx context.Context, id, userID string) error
}

type shelfRepository struct {
	db *gorm.DB
}

func NewShelfRepository(db *gorm.DB) ShelfRepository {
	return &shelfRepository{db: db}
}

func (r *shelfRepository) List(ctx context.Context, userID string, includeBooks bool) ([]models.Shelf, error) {
	var shelves []models.Shelf
	q := r.db.WithContext(ctx).
		Preload("Books").
		Preload("Movies").
		Where("user_id = ?", userID)

	if includeBooks {
		q = q.Preload("Books.BookCategories.Category").Preload("Books.ReadingProgress")
	}

	if err := q.Find(&shelves).Error; err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	return shelves, nil
}

// FindByID always loads the nested books ordered by position, with their
// categories and reading progress.
func (r *shelfRepository) FindByID(ctx context.Context, id, userID string) (*models.Shelf, error) {
	var shelf models.Shelf
	if err := r.db.WithContext(ctx).
		Preload("Books", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Books.BookCategories.Category").
		Preload("Books.ReadingProgress").
		Preload("Movies").
		Where("id = ? AND user_id = ?", id, userID).
		First(&shelf).Error; err != nil {
		return nil, err
	}
	return &shelf, nil
}

func (r *shelfRepository) Create(ctx context.Context, shelf *models.Shelf) error {
	if err := r.db.WithContext(ctx).Create(shelf).Error; err != nil {
		return fmt.Errorf("create shelf: %w", err)
	}
	return nil
}

func (r *shelfRepository) Save(ctx context.Context, shelf *models.Shelf) error {
	if err := r.db.WithContext(ctx).Save(shelf).Error; err != nil {
		return fmt.Errorf("update shelf: %w", err)
	}
	return nil
}

// Delete removes the shelf and clears the shelf reference on any book or movie
// that pointed at it. The books and movies themselves survive.
func (r *shelfRepository) Delete(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shelf models.Shelf
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&shelf).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Book{}).Where("shelf_id = ?", id).Update("shelf_id", nil).Error; err != nil {
			return fmt.Errorf("clear book shelf refs: %w", err)
		}
		if err := tx.Model(&models.Movie{}).Where("shelf_id = ?", id).Update("shelf_id", nil).Error; err != nil {
			return fmt.Errorf("clear movie shelf refs: %w", err)
		}
		if err := tx.Delete(&shelf).Error; err != nil {
			return fmt.Errorf("delete shelf: %w", err)
		}
		return nil
	})
}
