package repository

import (
	"context"
	"fmt"

	"libraryhub/internal/http-api/models"

	"gorm.io/gorm"
)

// BookRepository handles database operations for books. Every query is scoped
// to the owning user id.
type BookRepository interface {
	List(ctx context.Context, userID, search string, shelfID *string) ([]models.Book, error)
	FindByID(ctx context.Context, id, userID string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book, categoryIDs []string) error
	Save(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id, userID string) error
	ReplaceCategories(ctx context.Context, bookID string, categoryIDs []string) error
	CountForUser(ctx context.Context, userID string) (int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) List(ctx context.Context, userID, search string, shelfID *string) ([]models.Book, error) {
	var books []models.Book
	q := r.db.WithContext(ctx).
		Preload("Shelf").
		Preload("BookCategories.Category").
		Preload("ReadingProgress").
		Where("user_id = ?", userID)

	if search != "" {
		p := "%" + search + "%"
		q = q.Where("title ILIKE ? OR author ILIKE ?", p, p)
	}
	if shelfID != nil {
		q = q.Where("shelf_id = ?", *shelfID)
	}

	if err := q.Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *bookRepository) FindByID(ctx context.Context, id, userID string) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).
		Preload("Shelf").
		Preload("BookCategories.Category").
		Preload("ReadingProgress").
		Where("id = ? AND user_id = ?", id, userID).
		First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book, categoryIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(book).Error; err != nil {
			return fmt.Errorf("create book: %w", err)
		}
		for _, categoryID := range categoryIDs {
			if err := tx.Create(&models.BookCategory{BookID: book.ID, CategoryID: categoryID}).Error; err != nil {
				return fmt.Errorf("attach category: %w", err)
			}
		}
		return nil
	})
}

func (r *bookRepository) Save(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Book{})
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookRepository) CountForUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Book{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReplaceCategories clears the existing associations and inserts the supplied
// set. Full replace, never a merge.
func (r *bookRepository) ReplaceCategories(ctx context.Context, bookID string, categoryIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", bookID).Delete(&models.BookCategory{}).Error; err != nil {
			return fmt.Errorf("clear categories: %w", err)
		}
		for _, categoryID := range categoryIDs {
			if err := tx.Create(&models.BookCategory{BookID: bookID, CategoryID: categoryID}).Error; err != nil {
				return fmt.Errorf("attach category: %w", err)
			}
		}
		return nil
	})
}
