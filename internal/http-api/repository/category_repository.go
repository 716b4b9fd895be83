package repository

import (
	"context"
	"fmt"

	"libraryhub/internal/http-api/models"

	"gorm.io/gorm"
)

// CategoryRepository handles database operations for user-scoped categories.
type CategoryRepository interface {
	List(ctx context.Context, userID string) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id, userID string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context, userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// Delete removes the category and its join rows. Books and movies that carried
// the tag are untouched.
func (r *categoryRepository) Delete(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.BookCategory{}).Error; err != nil {
			return fmt.Errorf("clear book joins: %w", err)
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.MovieCategory{}).Error; err != nil {
			return fmt.Errorf("clear movie joins: %w", err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
}
