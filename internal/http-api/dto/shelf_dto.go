package dto

import (
	"time"

	"libraryhub/internal/http-api/models"
)

type CreateShelfRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    *string `json:"location,omitempty"`
	Row         *int    `json:"row,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
}

type UpdateShelfRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    *string `json:"location,omitempty"`
	Row         *int    `json:"row,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
}

type ShelfResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    *string        `json:"location,omitempty"`
	Row         *int           `json:"row,omitempty"`
	Description *string        `json:"description,omitempty"`
	Color       *string        `json:"color,omitempty"`
	Capacity    *int           `json:"capacity,omitempty"`
	BookCount   int            `json:"book_count"`
	MovieCount  int            `json:"movie_count"`
	Books       []BookResponse `json:"books,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Converters
func (d CreateShelfRequest) ToModel(userID string) models.Shelf {
	return models.Shelf{
		UserID:      userID,
		Name:        d.Name,
		Location:    d.Location,
		Row:         d.Row,
		Description: d.Description,
		Color:       d.Color,
		Capacity:    d.Capacity,
	}
}

func (d UpdateShelfRequest) ApplyTo(s *models.Shelf) {
	s.Name = d.Name
	s.Location = d.Location
	s.Row = d.Row
	s.Description = d.Description
	s.Color = d.Color
	s.Capacity = d.Capacity
}

// FromShelfModel maps a shelf; counts always come from the loaded
// associations, never a stored counter.
func FromShelfModel(s models.Shelf, includeBooks bool) ShelfResponse {
	resp := ShelfResponse{
		ID:          s.ID,
		Name:        s.Name,
		Location:    s.Location,
		Row:         s.Row,
		Description: s.Description,
		Color:       s.Color,
		Capacity:    s.Capacity,
		BookCount:   len(s.Books),
		MovieCount:  len(s.Movies),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if includeBooks {
		resp.Books = make([]BookResponse, 0, len(s.Books))
		for _, b := range s.Books {
			resp.Books = append(resp.Books, FromBookModel(b))
		}
	}
	return resp
}
