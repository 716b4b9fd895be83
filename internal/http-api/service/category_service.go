package service

import (
	"context"
	"errors"
	"strings"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryService: list, create, delete. There is no rename; categories are
// recreated instead.
type CategoryService interface {
	List(ctx context.Context, userID string) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id, userID string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context, userID string) ([]models.Category, error) {
	return s.repo.List(ctx, userID)
}

func (s *categoryService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, errors.New("name is required")
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id, userID string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
