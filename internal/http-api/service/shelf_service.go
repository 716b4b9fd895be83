package service

import (
	"context"
	"errors"
	"strings"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrShelfNotFound = errors.New("shelf not found")

type ShelfService interface {
	List(ctx context.Context, userID string, includeBooks bool) ([]models.Shelf, error)
	GetByID(ctx context.Context, id, userID string) (*models.Shelf, error)
	Create(ctx context.Context, shelf *models.Shelf) (*models.Shelf, error)
	Update(ctx context.Context, id, userID string, apply func(*models.Shelf)) (*models.Shelf, error)
	Delete(ctx context.Context, id, userID string) error
}

type shelfService struct {
	repo repository.ShelfRepository
}

func NewShelfService(repo repository.ShelfRepository) ShelfService {
	return &shelfService{repo: repo}
}

func (s *shelfService) List(ctx context.Context, userID string, includeBooks bool) ([]models.Shelf, error) {
	return s.repo.List(ctx, userID, includeBooks)
}

func (s *shelfService) GetByID(ctx context.Context, id, userID string) (*models.Shelf, error) {
	shelf, err := s.repo.FindByID(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShelfNotFound
	}
	if err != nil {
		return nil, err
	}
	return shelf, nil
}

func (s *shelfService) Create(ctx context.Context, shelf *models.Shelf) (*models.Shelf, error) {
	if strings.TrimSpace(shelf.Name) == "" {
		return nil, errors.New("name is required")
	}
	if err := s.repo.Create(ctx, shelf); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, shelf.ID, shelf.UserID)
}

func (s *shelfService) Update(ctx context.Context, id, userID string, apply func(*models.Shelf)) (*models.Shelf, error) {
	shelf, err := s.repo.FindByID(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShelfNotFound
	}
	if err != nil {
		return nil, err
	}

	apply(shelf)
	// don't drag the preloaded books/movies into the save
	shelf.Books = nil
	shelf.Movies = nil

	if err := s.repo.Save(ctx, shelf); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id, userID)
}

// Delete removes the shelf only; the repository clears shelf references on
// books and movies instead of cascading into them.
func (s *shelfService) Delete(ctx context.Context, id, userID string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShelfNotFound
		}
		return err
	}
	return nil
}
