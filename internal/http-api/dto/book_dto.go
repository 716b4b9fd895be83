package dto

import (
	"time"

	"libraryhub/internal/http-api/models"
)

// CreateBookRequest used for POST /api/books
type CreateBookRequest struct {
	Title           string   `json:"title" binding:"required"`
	Author          string   `json:"author" binding:"required"`
	ISBN            *string  `json:"isbn,omitempty"`
	Publisher       *string  `json:"publisher,omitempty"`
	PublicationYear *int     `json:"publication_year,omitempty"`
	PageCount       *int     `json:"page_count,omitempty"`
	Language        string   `json:"language,omitempty"`
	Description     *string  `json:"description,omitempty"`
	CoverImageURL   *string  `json:"cover_image_url,omitempty"`
	ShelfID         *string  `json:"shelf_id,omitempty"`
	Status          string   `json:"status,omitempty" binding:"omitempty,oneof=owned wishlist borrowed lent"`
	CategoryIDs     []string `json:"category_ids,omitempty"`
}

// UpdateBookRequest used for PUT /api/books/:id (full field replace)
type UpdateBookRequest struct {
	Title           string   `json:"title" binding:"required"`
	Author          string   `json:"author" binding:"required"`
	ISBN            *string  `json:"isbn,omitempty"`
	Publisher       *string  `json:"publisher,omitempty"`
	PublicationYear *int     `json:"publication_year,omitempty"`
	PageCount       *int     `json:"page_count,omitempty"`
	Language        string   `json:"language,omitempty"`
	Description     *string  `json:"description,omitempty"`
	CoverImageURL   *string  `json:"cover_image_url,omitempty"`
	ShelfID         *string  `json:"shelf_id,omitempty"`
	Position        *int     `json:"position,omitempty"`
	Status          string   `json:"status,omitempty" binding:"omitempty,oneof=owned wishlist borrowed lent"`
	CategoryIDs     []string `json:"category_ids"`
}

type BookResponse struct {
	ID              string                   `json:"id"`
	Title           string                   `json:"title"`
	Author          string                   `json:"author"`
	ISBN            *string                  `json:"isbn,omitempty"`
	Publisher       *string                  `json:"publisher,omitempty"`
	PublicationYear *int                     `json:"publication_year,omitempty"`
	PageCount       *int                     `json:"page_count,omitempty"`
	Language        string                   `json:"language"`
	Description     *string                  `json:"description,omitempty"`
	CoverImageURL   *string                  `json:"cover_image_url,omitempty"`
	ShelfID         *string                  `json:"shelf_id,omitempty"`
	ShelfName       *string                  `json:"shelf_name,omitempty"`
	Position        *int                     `json:"position,omitempty"`
	Status          string                   `json:"status"`
	Categories      []string                 `json:"categories"`
	ReadingProgress *ReadingProgressResponse `json:"reading_progress,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// Converters
func (d CreateBookRequest) ToModel(userID string) models.Book {
	status := d.Status
	if status == "" {
		status = models.BookStatusOwned
	}
	language := d.Language
	if language == "" {
		language = "Turkish"
	}
	return models.Book{
		UserID:          userID,
		Title:           d.Title,
		Author:          d.Author,
		ISBN:            d.ISBN,
		Publisher:       d.Publisher,
		PublicationYear: d.PublicationYear,
		PageCount:       d.PageCount,
		Language:        language,
		Description:     d.Description,
		CoverImageURL:   d.CoverImageURL,
		ShelfID:         d.ShelfID,
		Status:          status,
	}
}

// ApplyTo replaces every updatable field on the book, matching the full-update
// contract of PUT.
func (d UpdateBookRequest) ApplyTo(b *models.Book) {
	b.Title = d.Title
	b.Author = d.Author
	b.ISBN = d.ISBN
	b.Publisher = d.Publisher
	b.PublicationYear = d.PublicationYear
	b.PageCount = d.PageCount
	if d.Language != "" {
		b.Language = d.Language
	}
	b.Description = d.Description
	b.CoverImageURL = d.CoverImageURL
	b.ShelfID = d.ShelfID
	b.Position = d.Position
	if d.Status != "" {
		b.Status = d.Status
	}
}

func FromBookModel(b models.Book) BookResponse {
	categories := make([]string, 0, len(b.BookCategories))
	for _, bc := range b.BookCategories {
		if bc.Category != nil {
			categories = append(categories, bc.Category.Name)
		}
	}

	resp := BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		PageCount:       b.PageCount,
		Language:        b.Language,
		Description:     b.Description,
		CoverImageURL:   b.CoverImageURL,
		ShelfID:         b.ShelfID,
		Position:        b.Position,
		Status:          b.Status,
		Categories:      categories,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.Shelf != nil {
		resp.ShelfName = &b.Shelf.Name
	}
	if b.ReadingProgress != nil {
		progress := FromReadingProgressModel(*b.ReadingProgress)
		resp.ReadingProgress = &progress
	}
	return resp
}
