package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrMovieNotFound = errors.New("movie not found")

type MovieService interface {
	List(ctx context.Context, userID, search string, shelfID *string) ([]models.Movie, error)
	GetByID(ctx context.Context, id, userID string) (*models.Movie, error)
	Create(ctx context.Context, movie *models.Movie, categoryIDs []string) (*models.Movie, error)
	Update(ctx context.Context, id, userID string, apply func(*models.Movie), categoryIDs []string) (*models.Movie, error)
	Delete(ctx context.Context, id, userID string) error
	UpdateWatchingProgress(ctx context.Context, movieID, userID, status string, watchCount int, firstWatchedAt, lastWatchedAt *time.Time) (*models.WatchingProgress, error)
}

type movieService struct {
	repo repository.MovieRepository
}

func NewMovieService(repo repository.MovieRepository) MovieService {
	return &movieService{repo: repo}
}

func (s *movieService) List(ctx context.Context, userID, search string, shelfID *string) ([]models.Movie, error) {
	return s.repo.List(ctx, userID, strings.TrimSpace(search), shelfID)
}

func (s *movieService) GetByID(ctx context.Context, id, userID string) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, err
	}
	return movie, nil
}

// Create inserts the movie together with its category joins and the initial
// watching progress row (not_started, watch count 0).
func (s *movieService) Create(ctx context.Context, movie *models.Movie, categoryIDs []string) (*models.Movie, error) {
	if strings.TrimSpace(movie.Title) == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(movie.Director) == "" {
		return nil, errors.New("director is required")
	}

	if err := s.repo.Create(ctx, movie, categoryIDs); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, movie.ID, movie.UserID)
}

// Update replaces the movie's fields and its entire category set.
func (s *movieService) Update(ctx context.Context, id, userID string, apply func(*models.Movie), categoryIDs []string) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, err
	}

	apply(movie)
	// Save would also write the stale preloaded associations; detach them first
	movie.MovieCategories = nil
	movie.Shelf = nil
	movie.WatchingProgress = nil

	if err := s.repo.Save(ctx, movie); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceCategories(ctx, id, categoryIDs); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id, userID)
}

func (s *movieService) Delete(ctx context.Context, id, userID string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}
	return nil
}

// UpdateWatchingProgress writes the progress row for an owned movie, creating
// it if it somehow went missing.
func (s *movieService) UpdateWatchingProgress(ctx context.Context, movieID, userID, status string, watchCount int, firstWatchedAt, lastWatchedAt *time.Time) (*models.WatchingProgress, error) {
	movie, err := s.repo.FindByID(ctx, movieID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, err
	}

	progress := movie.WatchingProgress
	if progress == nil {
		progress = &models.WatchingProgress{MovieID: movieID}
	}

	progress.Status = status
	progress.WatchCount = watchCount
	progress.FirstWatchedAt = firstWatchedAt
	progress.LastWatchedAt = lastWatchedAt

	if err := s.repo.SaveWatchingProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}
