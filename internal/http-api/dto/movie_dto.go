package dto

import (
	"time"

	"libraryhub/internal/http-api/models"
)

// CreateMovieRequest used for POST /api/movies
type CreateMovieRequest struct {
	Title          string   `json:"title" binding:"required"`
	OriginalTitle  *string  `json:"original_title,omitempty"`
	Director       string   `json:"director" binding:"required"`
	Year           *int     `json:"year,omitempty"`
	Duration       *int     `json:"duration,omitempty"`
	Language       string   `json:"language,omitempty"`
	PosterURL      *string  `json:"poster_url,omitempty"`
	ImdbID         *string  `json:"imdb_id,omitempty"`
	AgeRating      *string  `json:"age_rating,omitempty"`
	Description    *string  `json:"description,omitempty"`
	PersonalRating *float64 `json:"personal_rating,omitempty" binding:"omitempty,min=1,max=10"`
	Notes          *string  `json:"notes,omitempty"`
	Status         string   `json:"status,omitempty" binding:"omitempty,oneof=owned watched watchlist lost"`
	Format         *string  `json:"format,omitempty"`
	Platform       *string  `json:"platform,omitempty"`
	ShelfID        *string  `json:"shelf_id,omitempty"`
	CategoryIDs    []string `json:"category_ids,omitempty"`
}

// UpdateMovieRequest used for PUT /api/movies/:id (full field replace)
type UpdateMovieRequest struct {
	Title          string   `json:"title" binding:"required"`
	OriginalTitle  *string  `json:"original_title,omitempty"`
	Director       string   `json:"director" binding:"required"`
	Year           *int     `json:"year,omitempty"`
	Duration       *int     `json:"duration,omitempty"`
	Language       string   `json:"language,omitempty"`
	PosterURL      *string  `json:"poster_url,omitempty"`
	ImdbID         *string  `json:"imdb_id,omitempty"`
	AgeRating      *string  `json:"age_rating,omitempty"`
	Description    *string  `json:"description,omitempty"`
	PersonalRating *float64 `json:"personal_rating,omitempty" binding:"omitempty,min=1,max=10"`
	Notes          *string  `json:"notes,omitempty"`
	Status         string   `json:"status,omitempty" binding:"omitempty,oneof=owned watched watchlist lost"`
	Format         *string  `json:"format,omitempty"`
	Platform       *string  `json:"platform,omitempty"`
	ShelfID        *string  `json:"shelf_id,omitempty"`
	Position       *int     `json:"position,omitempty"`
	CategoryIDs    []string `json:"category_ids"`
}

type MovieResponse struct {
	ID               string                    `json:"id"`
	Title            string                    `json:"title"`
	OriginalTitle    *string                   `json:"original_title,omitempty"`
	Director         string                    `json:"director"`
	Year             *int                      `json:"year,omitempty"`
	Duration         *int                      `json:"duration,omitempty"`
	Language         string                    `json:"language"`
	PosterURL        *string                   `json:"poster_url,omitempty"`
	ImdbID           *string                   `json:"imdb_id,omitempty"`
	AgeRating        *string                   `json:"age_rating,omitempty"`
	Description      *string                   `json:"description,omitempty"`
	PersonalRating   *float64                  `json:"personal_rating,omitempty"`
	Notes            *string                   `json:"notes,omitempty"`
	Status           string                    `json:"status"`
	Format           *string                   `json:"format,omitempty"`
	Platform         *string                   `json:"platform,omitempty"`
	ShelfID          *string                   `json:"shelf_id,omitempty"`
	ShelfName        *string                   `json:"shelf_name,omitempty"`
	Position         *int                      `json:"position,omitempty"`
	Categories       []string                  `json:"categories"`
	WatchingProgress *WatchingProgressResponse `json:"watching_progress,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// Converters
func (d CreateMovieRequest) ToModel(userID string) models.Movie {
	status := d.Status
	if status == "" {
		status = models.MovieStatusOwned
	}
	language := d.Language
	if language == "" {
		language = "Turkish"
	}
	return models.Movie{
		UserID:         userID,
		Title:          d.Title,
		OriginalTitle:  d.OriginalTitle,
		Director:       d.Director,
		Year:           d.Year,
		Duration:       d.Duration,
		Language:       language,
		PosterURL:      d.PosterURL,
		ImdbID:         d.ImdbID,
		AgeRating:      d.AgeRating,
		Description:    d.Description,
		PersonalRating: d.PersonalRating,
		Notes:          d.Notes,
		Status:         status,
		Format:         d.Format,
		Platform:       d.Platform,
		ShelfID:        d.ShelfID,
	}
}

// ApplyTo replaces every updatable field on the movie, matching the
// full-update contract of PUT.
func (d UpdateMovieRequest) ApplyTo(m *models.Movie) {
	m.Title = d.Title
	m.OriginalTitle = d.OriginalTitle
	m.Director = d.Director
	m.Year = d.Year
	m.Duration = d.Duration
	if d.Language != "" {
		m.Language = d.Language
	}
	m.PosterURL = d.PosterURL
	m.ImdbID = d.ImdbID
	m.AgeRating = d.AgeRating
	m.Description = d.Description
	m.PersonalRating = d.PersonalRating
	m.Notes = d.Notes
	if d.Status != "" {
		m.Status = d.Status
	}
	m.Format = d.Format
	m.Platform = d.Platform
	m.ShelfID = d.ShelfID
	m.Position = d.Position
}

func FromMovieModel(m models.Movie) MovieResponse {
	categories := make([]string, 0, len(m.MovieCategories))
	for _, mc := range m.MovieCategories {
		if mc.Category != nil {
			categories = append(categories, mc.Category.Name)
		}
	}

	resp := MovieResponse{
		ID:             m.ID,
		Title:          m.Title,
		OriginalTitle:  m.OriginalTitle,
		Director:       m.Director,
		Year:           m.Year,
		Duration:       m.Duration,
		Language:       m.Language,
		PosterURL:      m.PosterURL,
		ImdbID:         m.ImdbID,
		AgeRating:      m.AgeRating,
		Description:    m.Description,
		PersonalRating: m.PersonalRating,
		Notes:          m.Notes,
		Status:         m.Status,
		Format:         m.Format,
		Platform:       m.Platform,
		ShelfID:        m.ShelfID,
		Position:       m.Position,
		Categories:     categories,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Shelf != nil {
		resp.ShelfName = &m.Shelf.Name
	}
	if m.WatchingProgress != nil {
		progress := FromWatchingProgressModel(*m.WatchingProgress)
		resp.WatchingProgress = &progress
	}
	return resp
}
