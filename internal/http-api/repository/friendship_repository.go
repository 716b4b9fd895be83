package repository

import (
	"context"
	"fmt"

	"libraryhub/internal/http-api/models"

	"gorm.io/gorm"
)

// FriendshipRepository handles database operations for friendships. The pair
// (requester, addressee) is unordered, so every lookup goes through the
// symmetric betweenPair predicate.
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	Save(ctx context.Context, friendship *models.Friendship) error
	Delete(ctx context.Context, friendship *models.Friendship) error
	FindByID(ctx context.Context, id string) (*models.Friendship, error)
	FindPendingForAddressee(ctx context.Context, id, addresseeID string) (*models.Friendship, error)
	FindBetween(ctx context.Context, userA, userB string) (*models.Friendship, error)
	FindAcceptedBetween(ctx context.Context, userA, userB string) (*models.Friendship, error)
	ListAccepted(ctx context.Context, userID string) ([]models.Friendship, error)
	ListPendingFor(ctx context.Context, addresseeID string) ([]models.Friendship, error)
	ListAllFor(ctx context.Context, userID string) ([]models.Friendship, error)
	CountAccepted(ctx context.Context, userID string) (int64, error)
}

type friendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// betweenPair matches a friendship row in either direction. Single definition
// so no lookup can diverge from the others.
func betweenPair(db *gorm.DB, userA, userB string) *gorm.DB {
	return db.Where(
		"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
		userA, userB, userB, userA,
	)
}

func (r *friendshipRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	if err := r.db.WithContext(ctx).Create(friendship).Error; err != nil {
		return fmt.Errorf("create friendship: %w", err)
	}
	return nil
}

func (r *friendshipRepository) Save(ctx context.Context, friendship *models.Friendship) error {
	if err := r.db.WithContext(ctx).Save(friendship).Error; err != nil {
		return fmt.Errorf("update friendship: %w", err)
	}
	return nil
}

func (r *friendshipRepository) Delete(ctx context.Context, friendship *models.Friendship) error {
	if err := r.db.WithContext(ctx).Delete(friendship).Error; err != nil {
		return fmt.Errorf("delete friendship: %w", err)
	}
	return nil
}

func (r *friendshipRepository) FindByID(ctx context.Context, id string) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		First(&friendship, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

// FindPendingForAddressee looks up a pending request by id, only if it is
// addressed to the given user. Anyone else gets a not-found.
func (r *friendshipRepository) FindPendingForAddressee(ctx context.Context, id, addresseeID string) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		Where("id = ? AND addressee_id = ? AND status = ?", id, addresseeID, models.FriendshipStatusPending).
		First(&friendship).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

// FindBetween returns any row between the unordered pair, in any state.
func (r *friendshipRepository) FindBetween(ctx context.Context, userA, userB string) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := betweenPair(r.db.WithContext(ctx), userA, userB).First(&friendship).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) FindAcceptedBetween(ctx context.Context, userA, userB string) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := betweenPair(r.db.WithContext(ctx), userA, userB).
		Where("status = ?", models.FriendshipStatusAccepted).
		First(&friendship).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) ListAccepted(ctx context.Context, userID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
			userID, userID, models.FriendshipStatusAccepted).
		Find(&friendships).Error; err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	return friendships, nil
}

func (r *friendshipRepository) ListPendingFor(ctx context.Context, addresseeID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		Where("addressee_id = ? AND status = ?", addresseeID, models.FriendshipStatusPending).
		Find(&friendships).Error; err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	return friendships, nil
}

// ListAllFor returns every friendship row the user participates in, any state.
// Used to annotate user search results.
func (r *friendshipRepository) ListAllFor(ctx context.Context, userID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).
		Where("requester_id = ? OR addressee_id = ?", userID, userID).
		Find(&friendships).Error; err != nil {
		return nil, fmt.Errorf("list friendships: %w", err)
	}
	return friendships, nil
}

func (r *friendshipRepository) CountAccepted(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
			userID, userID, models.FriendshipStatusAccepted).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
