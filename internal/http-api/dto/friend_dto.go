package dto

import (
	"time"

	"libraryhub/internal/http-api/models"
)

// FriendResponse describes the other side of an accepted friendship.
type FriendResponse struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Bio          *string   `json:"bio,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	FriendsSince time.Time `json:"friends_since"`
}

type FriendshipResponse struct {
	ID              string     `json:"id"`
	RequesterID     string     `json:"requester_id"`
	RequesterName   string     `json:"requester_name"`
	RequesterAvatar *string    `json:"requester_avatar,omitempty"`
	AddresseeID     string     `json:"addressee_id"`
	AddresseeName   string     `json:"addressee_name"`
	AddresseeAvatar *string    `json:"addressee_avatar,omitempty"`
	Status          string     `json:"status"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// UserSearchResponse annotates a search hit with the relationship to the
// searching user.
type UserSearchResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Bio               *string `json:"bio,omitempty"`
	AvatarURL         *string `json:"avatar_url,omitempty"`
	IsFriend          bool    `json:"is_friend"`
	HasPendingRequest bool    `json:"has_pending_request"`
}

func fullName(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.FirstName + " " + u.LastName
}

// FromFriendshipModel maps a friendship row with both users preloaded.
func FromFriendshipModel(f models.Friendship) FriendshipResponse {
	resp := FriendshipResponse{
		ID:            f.ID,
		RequesterID:   f.RequesterID,
		RequesterName: fullName(f.Requester),
		AddresseeID:   f.AddresseeID,
		AddresseeName: fullName(f.Addressee),
		Status:        f.Status,
		AcceptedAt:    f.AcceptedAt,
		CreatedAt:     f.CreatedAt,
	}
	if f.Requester != nil {
		resp.RequesterAvatar = f.Requester.AvatarURL
	}
	if f.Addressee != nil {
		resp.AddresseeAvatar = f.Addressee.AvatarURL
	}
	return resp
}

// FromFriendshipToFriend maps an accepted friendship to the user on the other
// side of it, from the point of view of userID.
func FromFriendshipToFriend(f models.Friendship, userID string) FriendResponse {
	friend := f.Requester
	if f.RequesterID == userID {
		friend = f.Addressee
	}

	friendsSince := f.CreatedAt
	if f.AcceptedAt != nil {
		friendsSince = *f.AcceptedAt
	}

	resp := FriendResponse{
		Name:         fullName(friend),
		FriendsSince: friendsSince,
	}
	if friend != nil {
		resp.UserID = friend.ID
		resp.Email = friend.Email
		resp.Bio = friend.Bio
		resp.AvatarURL = friend.AvatarURL
	}
	return resp
}
