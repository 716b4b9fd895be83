package dto

import (
	"time"

	"libraryhub/internal/http-api/models"
)

type CreateCategoryRequest struct {
	Name  string  `json:"name" binding:"required"`
	Color *string `json:"color,omitempty"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (d CreateCategoryRequest) ToModel(userID string) models.Category {
	return models.Category{
		UserID: userID,
		Name:   d.Name,
		Color:  d.Color,
	}
}

func FromCategoryModel(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
	}
}
