package service

import (
	"context"
	"errors"
	"testing"

	"libraryhub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestShelfUpdate_DetachesBooksBeforeSave(t *testing.T) {
	repo := new(MockShelfRepository)
	svc := NewShelfService(repo)

	existing := &models.Shelf{
		ID:     "shelf-1",
		UserID: "user-1",
		Name:   "Reading",
		Books:  []models.Book{{ID: "book-1"}},
	}

	repo.On("FindByID", mock.Anything, "shelf-1", "user-1").Return(existing, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(s *models.Shelf) bool {
		return s.Books == nil && s.Movies == nil
	})).Return(nil)

	_, err := svc.Update(context.Background(), "shelf-1", "user-1", func(s *models.Shelf) {
		s.Name = "Finished"
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestShelfGet_CrossUserIsNotFound(t *testing.T) {
	repo := new(MockShelfRepository)
	svc := NewShelfService(repo)

	repo.On("FindByID", mock.Anything, "shelf-1", "intruder").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), "shelf-1", "intruder")
	assert.ErrorIs(t, err, ErrShelfNotFound)
}

// Store failures pass through instead of masquerading as a missing shelf.
func TestShelfGet_StoreErrorIsNotNotFound(t *testing.T) {
	repo := new(MockShelfRepository)
	svc := NewShelfService(repo)

	storeErr := errors.New("connection refused")
	repo.On("FindByID", mock.Anything, "shelf-1", "user-1").Return(nil, storeErr)

	_, err := svc.GetByID(context.Background(), "shelf-1", "user-1")

	assert.NotErrorIs(t, err, ErrShelfNotFound)
	assert.ErrorIs(t, err, storeErr)
}

func TestShelfDelete_StoreErrorIsNotNotFound(t *testing.T) {
	repo := new(MockShelfRepository)
	svc := NewShelfService(repo)

	storeErr := errors.New("connection refused")
	repo.On("Delete", mock.Anything, "shelf-1", "user-1").Return(storeErr)

	err := svc.Delete(context.Background(), "shelf-1", "user-1")

	assert.NotErrorIs(t, err, ErrShelfNotFound)
	assert.ErrorIs(t, err, storeErr)
}
