package service

import (
	"context"
	"errors"
	"strings"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrBookNotFound = errors.New("book not found")

type BookService interface {
	List(ctx context.Context, userID, search string, shelfID *string) ([]models.Book, error)
	GetByID(ctx context.Context, id, userID string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book, categoryIDs []string) (*models.Book, error)
	Update(ctx context.Context, id, userID string, apply func(*models.Book), categoryIDs []string) (*models.Book, error)
	Delete(ctx context.Context, id, userID string) error
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) List(ctx context.Context, userID, search string, shelfID *string) ([]models.Book, error) {
	return s.repo.List(ctx, userID, strings.TrimSpace(search), shelfID)
}

func (s *bookService) GetByID(ctx context.Context, id, userID string) (*models.Book, error) {
	book, err := s.repo.FindByID(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// Create inserts the book with its category joins. No reading progress row is
// created here; progress rows for books only appear once tracking starts.
func (s *bookService) Create(ctx context.Context, book *models.Book, categoryIDs []string) (*models.Book, error) {
	if strings.TrimSpace(book.Title) == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(book.Author) == "" {
		return nil, errors.New("author is required")
	}

	if err := s.repo.Create(ctx, book, categoryIDs); err != nil {
		return nil, err
	}

	// reload with shelf name and category names populated
	return s.repo.FindByID(ctx, book.ID, book.UserID)
}

// Update replaces the book's fields and its entire category set. Old
// associations not in categoryIDs are gone afterwards.
func (s *bookService) Update(ctx context.Context, id, userID string, apply func(*models.Book), categoryIDs []string) (*models.Book, error) {
	book, err := s.repo.FindByID(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	apply(book)
	// Save would also write the stale preloaded associations; detach them first
	book.BookCategories = nil
	book.Shelf = nil
	book.ReadingProgress = nil

	if err := s.repo.Save(ctx, book); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceCategories(ctx, id, categoryIDs); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id, userID)
}

func (s *bookService) Delete(ctx context.Context, id, userID string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}
