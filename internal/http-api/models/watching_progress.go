package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Watching statuses
const (
	WatchingStatusNotStarted = "not_started"
	WatchingStatusWatching   = "watching"
	WatchingStatusCompleted  = "completed"
	WatchingStatusAbandoned  = "abandoned"
)

// WatchingProgress tracks consumption of a movie, one row per movie.
// Created automatically together with its movie.
type WatchingProgress struct {
	ID             string     `gorm:"primaryKey;type:uuid" json:"id"`
	MovieID        string     `gorm:"type:uuid;not null;uniqueIndex" json:"movie_id"`
	Status         string     `gorm:"default:'not_started';not null" json:"status"`
	WatchCount     int        `gorm:"default:0" json:"watch_count"`
	FirstWatchedAt *time.Time `json:"first_watched_at,omitempty"`
	LastWatchedAt  *time.Time `json:"last_watched_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (p *WatchingProgress) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (WatchingProgress) TableName() string {
	return "watching_progress"
}
