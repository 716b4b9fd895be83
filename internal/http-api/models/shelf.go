package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shelf struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Location    *string   `json:"location,omitempty"`
	Row         *int      `json:"row,omitempty"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	Books  []Book  `gorm:"foreignKey:ShelfID" json:"books,omitempty"`
	Movies []Movie `gorm:"foreignKey:ShelfID" json:"movies,omitempty"`
}

func (shelf *Shelf) BeforeCreate(tx *gorm.DB) (err error) {
	if shelf.ID == "" {
		shelf.ID = uuid.New().String()
	}
	return
}

func (Shelf) TableName() string {
	return "shelves"
}
