package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book ownership statuses
const (
	BookStatusOwned    = "owned"
	BookStatusWishlist = "wishlist"
	BookStatusBorrowed = "borrowed"
	BookStatusLent     = "lent"
)

type Book struct {
	ID              string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID          string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string    `gorm:"not null" json:"title"`
	Author          string    `gorm:"not null" json:"author"`
	ISBN            *string   `json:"isbn,omitempty"`
	Publisher       *string   `json:"publisher,omitempty"`
	PublicationYear *int      `json:"publication_year,omitempty"`
	PageCount       *int      `json:"page_count,omitempty"`
	Language        string    `gorm:"default:'Turkish'" json:"language"`
	Description     *string   `gorm:"type:text" json:"description,omitempty"`
	CoverImageURL   *string   `json:"cover_image_url,omitempty"`
	ShelfID         *string   `gorm:"type:uuid;index" json:"shelf_id,omitempty"`
	Position        *int      `json:"position,omitempty"`
	Status          string    `gorm:"default:'owned';not null" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Associations
	Shelf           *Shelf           `gorm:"foreignKey:ShelfID;constraint:OnDelete:SET NULL;" json:"shelf,omitempty"`
	BookCategories  []BookCategory   `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;" json:"book_categories,omitempty"`
	ReadingProgress *ReadingProgress `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;" json:"reading_progress,omitempty"`
}

func (book *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}
