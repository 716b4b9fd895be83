package service

import (
	"context"
	"errors"
	"testing"

	"libraryhub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCategoryCreate_RequiresName(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), &models.Category{Name: "  "})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryDelete_NotFound(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo)

	repo.On("Delete", mock.Anything, "missing", "user-1").Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

// Store failures pass through instead of masquerading as a missing category.
func TestCategoryDelete_StoreErrorIsNotNotFound(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo)

	storeErr := errors.New("connection refused")
	repo.On("Delete", mock.Anything, "cat-1", "user-1").Return(storeErr)

	err := svc.Delete(context.Background(), "cat-1", "user-1")

	assert.NotErrorIs(t, err, ErrCategoryNotFound)
	assert.ErrorIs(t, err, storeErr)
}
