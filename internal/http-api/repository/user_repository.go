package repository

import (
	"context"
	"time"

	"libraryhub/internal/http-api/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	SetRefreshToken(ctx context.Context, userID string, token *string, expiresAt *time.Time) error
	Search(ctx context.Context, excludeUserID, term string, limit int) ([]models.User, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	// return nil on error, never a zero-value struct
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// SetRefreshToken stores (or clears, with nils) the refresh token on the user row.
func (r *userRepository) SetRefreshToken(ctx context.Context, userID string, token *string, expiresAt *time.Time) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"refresh_token":            token,
			"refresh_token_expires_at": expiresAt,
		}).Error
}

// Search finds users by case-insensitive substring on first name, last name or
// email, excluding the searching user. Capped at limit rows.
func (r *userRepository) Search(ctx context.Context, excludeUserID, term string, limit int) ([]models.User, error) {
	var users []models.User
	p := "%" + term + "%"
	if err := r.db.WithContext(ctx).
		Where("id <> ?", excludeUserID).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", p, p, p).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
