package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              string     `gorm:"primaryKey;type:uuid" json:"id"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	Password        string     `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	FirstName       string     `gorm:"not null" json:"first_name"`
	LastName        string     `gorm:"not null" json:"last_name"`
	Bio             *string    `json:"bio,omitempty"`
	AvatarURL       *string    `json:"avatar_url,omitempty"`
	IsPublicProfile bool       `gorm:"default:true;not null" json:"is_public_profile"`
	RefreshToken    *string    `json:"-"`
	RefreshExpiry   *time.Time `gorm:"column:refresh_token_expires_at" json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Associations
	Books      []Book     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"books,omitempty"`
	Movies     []Movie    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"movies,omitempty"`
	Shelves    []Shelf    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"shelves,omitempty"`
	Categories []Category `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"categories,omitempty"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
