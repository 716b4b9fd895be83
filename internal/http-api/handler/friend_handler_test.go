package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFriendshipService struct {
	mock.Mock
}

func (m *MockFriendshipService) SendRequest(ctx context.Context, requesterID, addresseeID string) (*models.Friendship, error) {
	args := m.Called(ctx, requesterID, addresseeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendshipService) Accept(ctx context.Context, requestID, userID string) (*models.Friendship, error) {
	args := m.Called(ctx, requestID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendshipService) Reject(ctx context.Context, requestID, userID string) error {
	args := m.Called(ctx, requestID, userID)
	return args.Error(0)
}

func (m *MockFriendshipService) RemoveFriend(ctx context.Context, userID, friendUserID string) error {
	args := m.Called(ctx, userID, friendUserID)
	return args.Error(0)
}

func (m *MockFriendshipService) Friends(ctx context.Context, userID string) ([]models.Friendship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Friendship), args.Error(1)
}

func (m *MockFriendshipService) PendingRequests(ctx context.Context, userID string) ([]models.Friendship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Friendship), args.Error(1)
}

func (m *MockFriendshipService) SearchUsers(ctx context.Context, userID, term string) ([]models.User, []models.Friendship, error) {
	args := m.Called(ctx, userID, term)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).([]models.Friendship), args.Error(2)
}

func TestSendRequest_Is200(t *testing.T) {
	svc := new(MockFriendshipService)
	h := NewFriendHandler(svc)
	router := setupRouter()
	router.POST("/friends/:addresseeId", asUser("alice"), h.SendRequest)

	friendship := &models.Friendship{
		ID:          "req-1",
		RequesterID: "alice",
		AddresseeID: "bob",
		Status:      models.FriendshipStatusPending,
	}
	svc.On("SendRequest", mock.Anything, "alice", "bob").Return(friendship, nil)

	req, _ := http.NewRequest("POST", "/friends/bob", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSendRequest_DuplicateIs400(t *testing.T) {
	svc := new(MockFriendshipService)
	h := NewFriendHandler(svc)
	router := setupRouter()
	router.POST("/friends/:addresseeId", asUser("alice"), h.SendRequest)

	svc.On("SendRequest", mock.Anything, "alice", "bob").Return(nil, service.ErrFriendshipExists)

	req, _ := http.NewRequest("POST", "/friends/bob", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Friend request already exists or you are already friends", resp["message"])
}

func TestAccept_Is200(t *testing.T) {
	svc := new(MockFriendshipService)
	h := NewFriendHandler(svc)
	router := setupRouter()
	router.PUT("/friends/requests/:id/accept", asUser("bob"), h.Accept)

	accepted := &models.Friendship{ID: "req-1", Status: models.FriendshipStatusAccepted}
	svc.On("Accept", mock.Anything, "req-1", "bob").Return(accepted, nil)

	req, _ := http.NewRequest("PUT", "/friends/requests/req-1/accept", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccept_NotAddresseeIs404(t *testing.T) {
	svc := new(MockFriendshipService)
	h := NewFriendHandler(svc)
	router := setupRouter()
	router.PUT("/friends/requests/:id/accept", asUser("mallory"), h.Accept)

	svc.On("Accept", mock.Anything, "req-1", "mallory").Return(nil, service.ErrFriendshipNotFound)

	req, _ := http.NewRequest("PUT", "/friends/requests/req-1/accept", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Reject and remove answer 204 with no body, unlike the catalogue deletes.
func TestReject_Is204(t *testing.T) {
	svc := new(MockFriendshipService)
	h := NewFriendHandler(svc)
	router := setupRouter()
	router.PUT("/friends/requests/:id/reject", asUser("bob"), h.Reject)

	svc.On("Reject", mock.Anything, "req-1", "bob").Return(nil)

	req, _ := http.NewRequest("PUT", "/friends/requests/req-1/reject", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRemove_Is204(t *testing.T) {
	svc := new(MockFriendshipService)
	h := NewFriendHandler(svc)
	router := setupRouter()
	router.DELETE("/friends/:friendId", asUser("alice"), h.Remove)

	svc.On("RemoveFriend", mock.Anything, "alice", "bob").Return(nil)

	req, _ := http.NewRequest("DELETE", "/friends/bob", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestSearch_AnnotatesRelationships(t *testing.T) {
	svc := new(MockFriendshipService)
	h := NewFriendHandler(svc)
	router := setupRouter()
	router.GET("/friends/search", asUser("alice"), h.SearchUsers)

	users := []models.User{
		{ID: "bob", FirstName: "Bob", LastName: "B", Email: "bob@example.com"},
		{ID: "carol", FirstName: "Carol", LastName: "C", Email: "carol@example.com"},
		{ID: "dave", FirstName: "Dave", LastName: "D", Email: "dave@example.com"},
	}
	rows := []models.Friendship{
		{RequesterID: "bob", AddresseeID: "alice", Status: models.FriendshipStatusAccepted},
		{RequesterID: "alice", AddresseeID: "carol", Status: models.FriendshipStatusPending},
	}
	svc.On("SearchUsers", mock.Anything, "alice", "b").Return(users, rows, nil)

	req, _ := http.NewRequest("GET", "/friends/search?query=b", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp, 3)
	assert.Equal(t, true, resp[0]["is_friend"])
	assert.Equal(t, false, resp[0]["has_pending_request"])
	assert.Equal(t, false, resp[1]["is_friend"])
	assert.Equal(t, true, resp[1]["has_pending_request"])
	assert.Equal(t, false, resp[2]["is_friend"])
	assert.Equal(t, false, resp[2]["has_pending_request"])
}

func TestSearch_MissingQueryIs400(t *testing.T) {
	svc := new(MockFriendshipService)
	h := NewFriendHandler(svc)
	router := setupRouter()
	router.GET("/friends/search", asUser("alice"), h.SearchUsers)

	req, _ := http.NewRequest("GET", "/friends/search", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "SearchUsers", mock.Anything, mock.Anything, mock.Anything)
}
