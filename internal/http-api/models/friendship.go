package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Friendship statuses
const (
	FriendshipStatusPending  = "pending"
	FriendshipStatusAccepted = "accepted"
	FriendshipStatusRejected = "rejected"
)

// Friendship links two users. The pair is unordered: (A,B) and (B,A) are the
// same friendship, every lookup must match both orders.
type Friendship struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	RequesterID string     `gorm:"type:uuid;not null;index" json:"requester_id"`
	AddresseeID string     `gorm:"type:uuid;not null;index" json:"addressee_id"`
	Status      string     `gorm:"default:'pending';not null" json:"status"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Associations
	Requester *User `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE;" json:"requester,omitempty"`
	Addressee *User `gorm:"foreignKey:AddresseeID;constraint:OnDelete:CASCADE;" json:"addressee,omitempty"`
}

func (f *Friendship) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}

func (Friendship) TableName() string {
	return "friendships"
}
