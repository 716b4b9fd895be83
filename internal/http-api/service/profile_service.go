package service

import (
	"context"
	"errors"

	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService exposes user profiles with aggregate counts. Private profiles
// are visible to their owner and accepted friends only; everyone else gets the
// same not-found a missing user would, so a probe cannot tell the two apart.
type ProfileService interface {
	GetProfile(ctx context.Context, targetID string, viewerID *string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, apply func(*models.User)) (*dto.ProfileResponse, error)
}

type profileService struct {
	userRepo       repository.UserRepository
	bookRepo       repository.BookRepository
	movieRepo      repository.MovieRepository
	friendshipRepo repository.FriendshipRepository
}

func NewProfileService(
	userRepo repository.UserRepository,
	bookRepo repository.BookRepository,
	movieRepo repository.MovieRepository,
	friendshipRepo repository.FriendshipRepository,
) ProfileService {
	return &profileService{
		userRepo:       userRepo,
		bookRepo:       bookRepo,
		movieRepo:      movieRepo,
		friendshipRepo: friendshipRepo,
	}
}

func (s *profileService) GetProfile(ctx context.Context, targetID string, viewerID *string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	if !s.canView(ctx, user, viewerID) {
		return nil, ErrProfileNotFound
	}

	return s.buildResponse(ctx, user)
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, apply func(*models.User)) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	apply(user)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, user)
}

// canView: public profiles are visible to anyone authenticated, private ones
// to the owner and accepted friends.
func (s *profileService) canView(ctx context.Context, user *models.User, viewerID *string) bool {
	if user.IsPublicProfile {
		return true
	}
	if viewerID == nil {
		return false
	}
	if *viewerID == user.ID {
		return true
	}
	_, err := s.friendshipRepo.FindAcceptedBetween(ctx, *viewerID, user.ID)
	return err == nil
}

func (s *profileService) buildResponse(ctx context.Context, user *models.User) (*dto.ProfileResponse, error) {
	bookCount, err := s.bookRepo.CountForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	movieCount, err := s.movieRepo.CountForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	friendCount, err := s.friendshipRepo.CountAccepted(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		Bio:             user.Bio,
		AvatarURL:       user.AvatarURL,
		IsPublicProfile: user.IsPublicProfile,
		BookCount:       bookCount,
		MovieCount:      movieCount,
		FriendCount:     friendCount,
		MemberSince:     user.CreatedAt,
	}, nil
}
