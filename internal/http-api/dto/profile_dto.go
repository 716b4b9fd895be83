package dto

import (
	"time"
)

type UpdateProfileRequest struct {
	FirstName       string  `json:"first_name" binding:"required"`
	LastName        string  `json:"last_name" binding:"required"`
	Bio             *string `json:"bio,omitempty"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	IsPublicProfile bool    `json:"is_public_profile"`
}

// ProfileResponse carries aggregate counts computed from the live
// associations.
type ProfileResponse struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Bio             *string   `json:"bio,omitempty"`
	AvatarURL       *string   `json:"avatar_url,omitempty"`
	IsPublicProfile bool      `json:"is_public_profile"`
	BookCount       int64     `json:"book_count"`
	MovieCount      int64     `json:"movie_count"`
	FriendCount     int64     `json:"friend_count"`
	MemberSince     time.Time `json:"member_since"`
}
