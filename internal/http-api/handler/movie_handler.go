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

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("/", h.Create)
	rg.PUT("/:id", h.Update)
	rg.PUT("/:id/watching-progress", h.UpdateWatchingProgress)
	rg.DELETE("/:id", h.Delete)
}

func (h *MovieHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var shelfID *string
	if v := c.Query("shelfId"); v != "" {
		shelfID = &v
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	movies, err := h.svc.List(ctx, userID, c.Query("search"), shelfID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	items := make([]dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		items = append(items, dto.FromMovieModel(m))
	}
	c.JSON(http.StatusOK, items)
}

func (h *MovieHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	movie, err := h.svc.GetByID(ctx, c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromMovieModel(*movie))
}

// Create inserts a movie; its watching progress row is created alongside it.
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	movie := req.ToModel(middleware.CurrentUserID(c))
	created, err := h.svc.Create(ctx, &movie, req.CategoryIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromMovieModel(*created))
}

func (h *MovieHandler) Update(c *gin.Context) {
	var req dto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.Update(ctx, c.Param("id"), middleware.CurrentUserID(c), req.ApplyTo, req.CategoryIDs)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromMovieModel(*updated))
}

func (h *MovieHandler) UpdateWatchingProgress(c *gin.Context) {
	var req dto.UpdateWatchingProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	progress, err := h.svc.UpdateWatchingProgress(ctx,
		c.Param("id"), middleware.CurrentUserID(c),
		req.Status, req.WatchCount, req.FirstWatchedAt, req.LastWatchedAt)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromWatchingProgressModel(*progress))
}

func (h *MovieHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// 204 with no body, unlike book deletion which answers 200 + message
	c.Status(http.StatusNoContent)
}
