package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/middleware"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	svc service.FriendshipService
}

func NewFriendHandler(svc service.FriendshipService) *FriendHandler {
	return &FriendHandler{svc: svc}
}

func (h *FriendHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/requests", h.PendingRequests)
	rg.GET("/search", h.SearchUsers)
	rg.POST("/:addresseeId", h.SendRequest)
	rg.PUT("/requests/:id/accept", h.Accept)
	rg.PUT("/requests/:id/reject", h.Reject)
	rg.DELETE("/:friendId", h.Remove)
}

// List returns accepted friendships mapped to the user on the other side.
func (h *FriendHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	friendships, err := h.svc.Friends(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	items := make([]dto.FriendResponse, 0, len(friendships))
	for _, f := range friendships {
		items = append(items, dto.FromFriendshipToFriend(f, userID))
	}
	c.JSON(http.StatusOK, items)
}

func (h *FriendHandler) PendingRequests(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	requests, err := h.svc.PendingRequests(ctx, middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	items := make([]dto.FriendshipResponse, 0, len(requests))
	for _, f := range requests {
		items = append(items, dto.FromFriendshipModel(f))
	}
	c.JSON(http.StatusOK, items)
}

// SearchUsers finds users by name or email and annotates each hit with its
// relationship to the caller.
func (h *FriendHandler) SearchUsers(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "query is required"})
		return
	}

	userID := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, friendships, err := h.svc.SearchUsers(ctx, userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// relationship state per other-user id, both directions
	accepted := make(map[string]bool)
	pending := make(map[string]bool)
	for _, f := range friendships {
		other := f.RequesterID
		if other == userID {
			other = f.AddresseeID
		}
		switch f.Status {
		case models.FriendshipStatusAccepted:
			accepted[other] = true
		case models.FriendshipStatusPending:
			pending[other] = true
		}
	}

	items := make([]dto.UserSearchResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserSearchResponse{
			ID:                u.ID,
			Name:              u.FirstName + " " + u.LastName,
			Email:             u.Email,
			Bio:               u.Bio,
			AvatarURL:         u.AvatarURL,
			IsFriend:          accepted[u.ID],
			HasPendingRequest: pending[u.ID],
		})
	}
	c.JSON(http.StatusOK, items)
}

func (h *FriendHandler) SendRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	friendship, err := h.svc.SendRequest(ctx, middleware.CurrentUserID(c), c.Param("addresseeId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFriendship),
			errors.Is(err, service.ErrFriendshipExists),
			errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromFriendshipModel(*friendship))
}

func (h *FriendHandler) Accept(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	friendship, err := h.svc.Accept(ctx, c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Friend request not found"})
		return
	}

	c.JSON(http.StatusOK, dto.FromFriendshipModel(*friendship))
}

func (h *FriendHandler) Reject(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Reject(ctx, c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Friend request not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove deletes the accepted friendship entirely, letting the pair request
// each other again later.
func (h *FriendHandler) Remove(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.RemoveFriend(ctx, middleware.CurrentUserID(c), c.Param("friendId")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Friendship not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
