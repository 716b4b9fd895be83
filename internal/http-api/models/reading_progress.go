package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reading statuses
const (
	ReadingStatusNotStarted = "not_started"
	ReadingStatusReading    = "reading"
	ReadingStatusCompleted  = "completed"
	ReadingStatusAbandoned  = "abandoned"
)

// ReadingProgress tracks how far a user is into a book, one row per book.
type ReadingProgress struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	BookID      string     `gorm:"type:uuid;not null;uniqueIndex" json:"book_id"`
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	CurrentPage int        `gorm:"default:0" json:"current_page"`
	Status      string     `gorm:"default:'not_started';not null" json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Rating      *int       `json:"rating,omitempty"`
	Notes       *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *ReadingProgress) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (ReadingProgress) TableName() string {
	return "reading_progress"
}
