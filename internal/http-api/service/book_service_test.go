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

func TestBookCreate_NoProgressRow(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewBookService(repo)

	book := &models.Book{UserID: "user-1", Title: "Dune", Author: "Frank Herbert"}

	repo.On("Create", mock.Anything, book, []string{"cat-1"}).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Book).ID = "book-1"
		}).Return(nil)
	repo.On("FindByID", mock.Anything, "book-1", "user-1").Return(book, nil)

	created, err := svc.Create(context.Background(), book, []string{"cat-1"})

	require.NoError(t, err)
	// books never get a progress row at creation time
	assert.Nil(t, created.ReadingProgress)
	repo.AssertExpectations(t)
}

func TestBookCreate_RequiresTitleAndAuthor(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewBookService(repo)

	_, err := svc.Create(context.Background(), &models.Book{Author: "x"}, nil)
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), &models.Book{Title: "x"}, nil)
	assert.Error(t, err)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookUpdate_ReplacesCategorySetEntirely(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewBookService(repo)

	existing := &models.Book{
		ID:     "book-1",
		UserID: "user-1",
		Title:  "Dune",
		Author: "Frank Herbert",
		BookCategories: []models.BookCategory{
			{BookID: "book-1", CategoryID: "cat-old"},
		},
	}

	repo.On("FindByID", mock.Anything, "book-1", "user-1").Return(existing, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*models.Book")).Return(nil)
	// the new set wins wholesale, old associations are not merged in
	repo.On("ReplaceCategories", mock.Anything, "book-1", []string{"cat-new-1", "cat-new-2"}).Return(nil)

	_, err := svc.Update(context.Background(), "book-1", "user-1", func(b *models.Book) {
		b.Title = "Dune Messiah"
	}, []string{"cat-new-1", "cat-new-2"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBookUpdate_EmptyCategoryListClearsAll(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewBookService(repo)

	existing := &models.Book{ID: "book-1", UserID: "user-1", Title: "Dune", Author: "Frank Herbert"}

	repo.On("FindByID", mock.Anything, "book-1", "user-1").Return(existing, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	repo.On("ReplaceCategories", mock.Anything, "book-1", []string(nil)).Return(nil)

	_, err := svc.Update(context.Background(), "book-1", "user-1", func(b *models.Book) {}, nil)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBookGet_CrossUserIsNotFound(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewBookService(repo)

	repo.On("FindByID", mock.Anything, "book-1", "intruder").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), "book-1", "intruder")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookDelete_NotFound(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewBookService(repo)

	repo.On("Delete", mock.Anything, "missing", "user-1").Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

// A failing store is not a missing book; only a record-not-found result maps
// to the sentinel.
func TestBookGet_StoreErrorIsNotNotFound(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewBookService(repo)

	storeErr := errors.New("connection refused")
	repo.On("FindByID", mock.Anything, "book-1", "user-1").Return(nil, storeErr)

	_, err := svc.GetByID(context.Background(), "book-1", "user-1")

	assert.NotErrorIs(t, err, ErrBookNotFound)
	assert.ErrorIs(t, err, storeErr)
}

func TestBookDelete_StoreErrorIsNotNotFound(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewBookService(repo)

	storeErr := errors.New("connection refused")
	repo.On("Delete", mock.Anything, "book-1", "user-1").Return(storeErr)

	err := svc.Delete(context.Background(), "book-1", "user-1")

	assert.NotErrorIs(t, err, ErrBookNotFound)
	assert.ErrorIs(t, err, storeErr)
}
