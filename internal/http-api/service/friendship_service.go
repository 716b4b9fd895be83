package service

import (
	"context"
	"errors"
	"time"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrFriendshipNotFound = errors.New("friend request not found")
	ErrSelfFriendship     = errors.New("You cannot send a friend request to yourself")
	ErrFriendshipExists   = errors.New("Friend request already exists or you are already friends")
	ErrUserNotFound       = errors.New("user not found")
)

// FriendshipService manages the friend graph. All pair lookups are symmetric:
// a row between A and B blocks new requests in either direction, including a
// rejected one, which is permanent until the row is removed.
type FriendshipService interface {
	SendRequest(ctx context.Context, requesterID, addresseeID string) (*models.Friendship, error)
	Accept(ctx context.Context, requestID, userID string) (*models.Friendship, error)
	Reject(ctx context.Context, requestID, userID string) error
	RemoveFriend(ctx context.Context, userID, friendUserID string) error
	Friends(ctx context.Context, userID string) ([]models.Friendship, error)
	PendingRequests(ctx context.Context, userID string) ([]models.Friendship, error)
	SearchUsers(ctx context.Context, userID, term string) ([]models.User, []models.Friendship, error)
}

type friendshipService struct {
	repo     repository.FriendshipRepository
	userRepo repository.UserRepository
}

func NewFriendshipService(repo repository.FriendshipRepository, userRepo repository.UserRepository) FriendshipService {
	return &friendshipService{repo: repo, userRepo: userRepo}
}

// SendRequest creates a pending friendship row. Any existing row between the
// pair, whatever its state and direction, blocks a new one.
func (s *friendshipService) SendRequest(ctx context.Context, requesterID, addresseeID string) (*models.Friendship, error) {
	if requesterID == addresseeID {
		return nil, ErrSelfFriendship
	}

	if _, err := s.userRepo.FindByID(ctx, addresseeID); err != nil {
		return nil, ErrUserNotFound
	}

	if _, err := s.repo.FindBetween(ctx, requesterID, addresseeID); err == nil {
		return nil, ErrFriendshipExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	friendship := &models.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.FriendshipStatusPending,
	}
	if err := s.repo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, friendship.ID)
}

// Accept marks a pending request accepted. Only the addressee can accept;
// anyone else gets a not-found.
func (s *friendshipService) Accept(ctx context.Context, requestID, userID string) (*models.Friendship, error) {
	friendship, err := s.repo.FindPendingForAddressee(ctx, requestID, userID)
	if err != nil {
		return nil, ErrFriendshipNotFound
	}

	now := time.Now()
	friendship.Status = models.FriendshipStatusAccepted
	friendship.AcceptedAt = &now
	// keep the preloaded users off the save
	requester, addressee := friendship.Requester, friendship.Addressee
	friendship.Requester = nil
	friendship.Addressee = nil

	if err := s.repo.Save(ctx, friendship); err != nil {
		return nil, err
	}
	friendship.Requester = requester
	friendship.Addressee = addressee
	return friendship, nil
}

// Reject marks a pending request rejected. The row stays, so the pair can
// never request each other again unless a friend removal deletes it.
func (s *friendshipService) Reject(ctx context.Context, requestID, userID string) error {
	friendship, err := s.repo.FindPendingForAddressee(ctx, requestID, userID)
	if err != nil {
		return ErrFriendshipNotFound
	}

	friendship.Status = models.FriendshipStatusRejected
	friendship.Requester = nil
	friendship.Addressee = nil
	return s.repo.Save(ctx, friendship)
}

// RemoveFriend deletes the accepted row between the pair. Either side can
// remove; after removal a fresh request is possible again.
func (s *friendshipService) RemoveFriend(ctx context.Context, userID, friendUserID string) error {
	friendship, err := s.repo.FindAcceptedBetween(ctx, userID, friendUserID)
	if err != nil {
		return ErrFriendshipNotFound
	}
	return s.repo.Delete(ctx, friendship)
}

func (s *friendshipService) Friends(ctx context.Context, userID string) ([]models.Friendship, error) {
	return s.repo.ListAccepted(ctx, userID)
}

func (s *friendshipService) PendingRequests(ctx context.Context, userID string) ([]models.Friendship, error) {
	return s.repo.ListPendingFor(ctx, userID)
}

// SearchUsers finds other users by name or email and returns the caller's
// friendship rows alongside, so each hit can be annotated with its
// relationship state.
func (s *friendshipService) SearchUsers(ctx context.Context, userID, term string) ([]models.User, []models.Friendship, error) {
	users, err := s.userRepo.Search(ctx, userID, term, 20)
	if err != nil {
		return nil, nil, err
	}

	friendships, err := s.repo.ListAllFor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return users, friendships, nil
}
