package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/middleware"
	"libraryhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ShelfHandler struct {
	svc service.ShelfService
}

func NewShelfHandler(svc service.ShelfService) *ShelfHandler {
	return &ShelfHandler{svc: svc}
}

func (h *ShelfHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("/", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ShelfHandler) List(c *gin.Context) {
	includeBooks := c.Query("includeBooks") == "true"

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	shelves, err := h.svc.List(ctx, middleware.CurrentUserID(c), includeBooks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	items := make([]dto.ShelfResponse, 0, len(shelves))
	for _, s := range shelves {
		items = append(items, dto.FromShelfModel(s, includeBooks))
	}
	c.JSON(http.StatusOK, items)
}

// Get returns a shelf with its books, ordered by position.
func (h *ShelfHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	shelf, err := h.svc.GetByID(ctx, c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrShelfNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shelf not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromShelfModel(*shelf, true))
}

func (h *ShelfHandler) Create(c *gin.Context) {
	var req dto.CreateShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	shelf := req.ToModel(middleware.CurrentUserID(c))
	created, err := h.svc.Create(ctx, &shelf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromShelfModel(*created, false))
}

func (h *ShelfHandler) Update(c *gin.Context) {
	var req dto.UpdateShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.Update(ctx, c.Param("id"), middleware.CurrentUserID(c), req.ApplyTo)
	if err != nil {
		if errors.Is(err, service.ErrShelfNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shelf not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromShelfModel(*updated, false))
}

// Delete removes the shelf; its books and movies survive with shelf_id
// cleared.
func (h *ShelfHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		if errors.Is(err, service.ErrShelfNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shelf not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shelf deleted successfully"})
}
