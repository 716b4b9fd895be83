package service

import (
	"context"
	"testing"

	"libraryhub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSendRequest_Success(t *testing.T) {
	repo := new(MockFriendshipRepository)
	userRepo := new(MockUserRepository)
	svc := NewFriendshipService(repo, userRepo)

	userRepo.On("FindByID", mock.Anything, "bob").Return(&models.User{ID: "bob"}, nil)
	repo.On("FindBetween", mock.Anything, "alice", "bob").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Friendship")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Friendship).ID = "req-1"
		}).Return(nil)
	repo.On("FindByID", mock.Anything, "req-1").Return(&models.Friendship{
		ID:          "req-1",
		RequesterID: "alice",
		AddresseeID: "bob",
		Status:      models.FriendshipStatusPending,
	}, nil)

	friendship, err := svc.SendRequest(context.Background(), "alice", "bob")

	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusPending, friendship.Status)
	assert.Equal(t, "alice", friendship.RequesterID)
}

func TestSendRequest_ToSelf(t *testing.T) {
	repo := new(MockFriendshipRepository)
	userRepo := new(MockUserRepository)
	svc := NewFriendshipService(repo, userRepo)

	_, err := svc.SendRequest(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, ErrSelfFriendship)
}

func TestSendRequest_UnknownAddressee(t *testing.T) {
	repo := new(MockFriendshipRepository)
	userRepo := new(MockUserRepository)
	svc := NewFriendshipService(repo, userRepo)

	userRepo.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.SendRequest(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// A row between the pair blocks a new request regardless of which side created
// it and regardless of state, including rejected.
func TestSendRequest_DuplicateBothDirections(t *testing.T) {
	cases := []struct {
		name string
		row  *models.Friendship
	}{
		{"pending same direction", &models.Friendship{RequesterID: "alice", AddresseeID: "bob", Status: models.FriendshipStatusPending}},
		{"pending reversed", &models.Friendship{RequesterID: "bob", AddresseeID: "alice", Status: models.FriendshipStatusPending}},
		{"accepted", &models.Friendship{RequesterID: "bob", AddresseeID: "alice", Status: models.FriendshipStatusAccepted}},
		{"rejected is permanent", &models.Friendship{RequesterID: "alice", AddresseeID: "bob", Status: models.FriendshipStatusRejected}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockFriendshipRepository)
			userRepo := new(MockUserRepository)
			svc := NewFriendshipService(repo, userRepo)

			userRepo.On("FindByID", mock.Anything, "bob").Return(&models.User{ID: "bob"}, nil)
			repo.On("FindBetween", mock.Anything, "alice", "bob").Return(tc.row, nil)

			_, err := svc.SendRequest(context.Background(), "alice", "bob")

			assert.ErrorIs(t, err, ErrFriendshipExists)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAccept_SetsAcceptedAt(t *testing.T) {
	repo := new(MockFriendshipRepository)
	userRepo := new(MockUserRepository)
	svc := NewFriendshipService(repo, userRepo)

	pending := &models.Friendship{
		ID:          "req-1",
		RequesterID: "alice",
		AddresseeID: "bob",
		Status:      models.FriendshipStatusPending,
		Requester:   &models.User{ID: "alice"},
		Addressee:   &models.User{ID: "bob"},
	}

	repo.On("FindPendingForAddressee", mock.Anything, "req-1", "bob").Return(pending, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*models.Friendship")).Return(nil)

	friendship, err := svc.Accept(context.Background(), "req-1", "bob")

	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusAccepted, friendship.Status)
	assert.NotNil(t, friendship.AcceptedAt)
	// preloaded users survive for the response
	assert.NotNil(t, friendship.Requester)
}

// Only the addressee can act on a pending request; the repository lookup
// filters on addressee id so everyone else sees not-found.
func TestAccept_NotAddressee(t *testing.T) {
	repo := new(MockFriendshipRepository)
	userRepo := new(MockUserRepository)
	svc := NewFriendshipService(repo, userRepo)

	repo.On("FindPendingForAddressee", mock.Anything, "req-1", "alice").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Accept(context.Background(), "req-1", "alice")
	assert.ErrorIs(t, err, ErrFriendshipNotFound)
}

func TestReject_KeepsRow(t *testing.T) {
	repo := new(MockFriendshipRepository)
	userRepo := new(MockUserRepository)
	svc := NewFriendshipService(repo, userRepo)

	pending := &models.Friendship{
		ID:          "req-1",
		RequesterID: "alice",
		AddresseeID: "bob",
		Status:      models.FriendshipStatusPending,
	}

	repo.On("FindPendingForAddressee", mock.Anything, "req-1", "bob").Return(pending, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(f *models.Friendship) bool {
		return f.Status == models.FriendshipStatusRejected
	})).Return(nil)

	err := svc.Reject(context.Background(), "req-1", "bob")

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRemoveFriend_DeletesRow(t *testing.T) {
	repo := new(MockFriendshipRepository)
	userRepo := new(MockUserRepository)
	svc := NewFriendshipService(repo, userRepo)

	accepted := &models.Friendship{
		ID:          "f-1",
		RequesterID: "alice",
		AddresseeID: "bob",
		Status:      models.FriendshipStatusAccepted,
	}

	repo.On("FindAcceptedBetween", mock.Anything, "bob", "alice").Return(accepted, nil)
	repo.On("Delete", mock.Anything, accepted).Return(nil)

	// either side may remove; here the original addressee does
	err := svc.RemoveFriend(context.Background(), "bob", "alice")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

// After a removal no row remains, so a fresh request goes through.
func TestRemoveFriend_ThenReRequest(t *testing.T) {
	repo := new(MockFriendshipRepository)
	userRepo := new(MockUserRepository)
	svc := NewFriendshipService(repo, userRepo)

	userRepo.On("FindByID", mock.Anything, "bob").Return(&models.User{ID: "bob"}, nil)
	repo.On("FindBetween", mock.Anything, "alice", "bob").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Friendship")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Friendship).ID = "req-2"
		}).Return(nil)
	repo.On("FindByID", mock.Anything, "req-2").Return(&models.Friendship{
		ID:          "req-2",
		RequesterID: "alice",
		AddresseeID: "bob",
		Status:      models.FriendshipStatusPending,
	}, nil)

	friendship, err := svc.SendRequest(context.Background(), "alice", "bob")

	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusPending, friendship.Status)
}

func TestSearchUsers_ReturnsRelationshipRows(t *testing.T) {
	repo := new(MockFriendshipRepository)
	userRepo := new(MockUserRepository)
	svc := NewFriendshipService(repo, userRepo)

	hits := []models.User{{ID: "bob"}, {ID: "carol"}}
	rows := []models.Friendship{
		{RequesterID: "carol", AddresseeID: "alice", Status: models.FriendshipStatusAccepted},
	}

	userRepo.On("Search", mock.Anything, "alice", "bo", 20).Return(hits, nil)
	repo.On("ListAllFor", mock.Anything, "alice").Return(rows, nil)

	users, friendships, err := svc.SearchUsers(context.Background(), "alice", "bo")

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Len(t, friendships, 1)
}
