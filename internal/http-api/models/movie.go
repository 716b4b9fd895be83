package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movie ownership statuses
const (
	MovieStatusOwned     = "owned"
	MovieStatusWatched   = "watched"
	MovieStatusWatchlist = "watchlist"
	MovieStatusLost      = "lost"
)

type Movie struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID         string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string    `gorm:"not null" json:"title"`
	OriginalTitle  *string   `json:"original_title,omitempty"`
	Director       string    `gorm:"not null" json:"director"`
	Year           *int      `json:"year,omitempty"`
	Duration       *int      `json:"duration,omitempty"` // in minutes
	Language       string    `gorm:"default:'Turkish'" json:"language"`
	PosterURL      *string   `json:"poster_url,omitempty"`
	ImdbID         *string   `json:"imdb_id,omitempty"`
	AgeRating      *string   `json:"age_rating,omitempty"` // 7+, 13+, 18+
	Description    *string   `gorm:"type:text" json:"description,omitempty"`
	PersonalRating *float64  `gorm:"type:decimal(3,1)" json:"personal_rating,omitempty"` // 1-10, one decimal
	Notes          *string   `gorm:"type:text" json:"notes,omitempty"`
	Status         string    `gorm:"default:'owned';not null" json:"status"`
	Format         *string   `json:"format,omitempty"`
	Platform       *string   `json:"platform,omitempty"`
	ShelfID        *string   `gorm:"type:uuid;index" json:"shelf_id,omitempty"`
	Position       *int      `json:"position,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Associations
	Shelf            *Shelf            `gorm:"foreignKey:ShelfID;constraint:OnDelete:SET NULL;" json:"shelf,omitempty"`
	MovieCategories  []MovieCategory   `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;" json:"movie_categories,omitempty"`
	WatchingProgress *WatchingProgress `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;" json:"watching_progress,omitempty"`
}

func (movie *Movie) BeforeCreate(tx *gorm.DB) (err error) {
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	return
}

func (Movie) TableName() string {
	return "movies"
}
