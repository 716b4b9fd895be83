package dto

import (
	"time"

	"libraryhub/internal/http-api/models"
)

type ReadingProgressResponse struct {
	ID          string     `json:"id"`
	CurrentPage int        `json:"current_page"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Rating      *int       `json:"rating,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type WatchingProgressResponse struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	WatchCount     int        `json:"watch_count"`
	FirstWatchedAt *time.Time `json:"first_watched_at,omitempty"`
	LastWatchedAt  *time.Time `json:"last_watched_at,omitempty"`
}

// UpdateWatchingProgressRequest used for PUT /api/movies/:id/watching-progress
type UpdateWatchingProgressRequest struct {
	Status         string     `json:"status" binding:"required,oneof=not_started watching completed abandoned"`
	WatchCount     int        `json:"watch_count" binding:"min=0"`
	FirstWatchedAt *time.Time `json:"first_watched_at,omitempty"`
	LastWatchedAt  *time.Time `json:"last_watched_at,omitempty"`
}

func FromReadingProgressModel(p models.ReadingProgress) ReadingProgressResponse {
	return ReadingProgressResponse{
		ID:          p.ID,
		CurrentPage: p.CurrentPage,
		Status:      p.Status,
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
		Rating:      p.Rating,
		Notes:       p.Notes,
	}
}

func FromWatchingProgressModel(p models.WatchingProgress) WatchingProgressResponse {
	return WatchingProgressResponse{
		ID:             p.ID,
		Status:         p.Status,
		WatchCount:     p.WatchCount,
		FirstWatchedAt: p.FirstWatchedAt,
		LastWatchedAt:  p.LastWatchedAt,
	}
}
