package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"libraryhub/internal/config"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/middleware/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret-test-secret-test-secret!",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
	userRepo.On("SetRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	pair, user, err := svc.Register(context.Background(), "ada@example.com", "password123", "Ada", "Lovelace")

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.True(t, user.IsPublicProfile)
	// password must be stored hashed, never plain
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, auth.VerifyPassword(user.Password, "password123"))
}

// A store failure during the email lookup aborts registration; it neither
// reads as a taken email nor falls through to Create.
func TestRegister_StoreErrorAbortsLookup(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	storeErr := errors.New("connection refused")
	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, storeErr)

	_, _, err := svc.Register(context.Background(), "ada@example.com", "password123", "Ada", "Lovelace")

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrEmailInUse)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	existing := &models.User{ID: "user-1", Email: "ada@example.com"}
	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(existing, nil)

	_, _, err := svc.Register(context.Background(), "ada@example.com", "password123", "Ada", "Lovelace")

	assert.ErrorIs(t, err, ErrEmailInUse)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_RoundTrip(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	user := &models.User{ID: "user-1", Email: "ada@example.com", Password: hash}

	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(user, nil)
	userRepo.On("SetRefreshToken", mock.Anything, "user-1", mock.Anything, mock.Anything).Return(nil)

	pair, got, err := svc.Login(context.Background(), "ada@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)

	// the issued access token must validate and carry the user id
	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestLogin_InvalidCredentialsAreUniform(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)
	user := &models.User{ID: "user-1", Email: "ada@example.com", Password: hash}

	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(user, nil)
	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	// wrong password and unknown email yield the same error
	_, _, wrongPw := svc.Login(context.Background(), "ada@example.com", "wrong")
	_, _, unknown := svc.Login(context.Background(), "nobody@example.com", "wrong")

	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestRefresh_RotatesBothTokens(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	hash, _ := auth.HashPassword("password123")
	user := &models.User{ID: "user-1", Email: "ada@example.com", Password: hash}

	var storedToken *string
	var storedExpiry *time.Time
	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(user, nil)
	userRepo.On("SetRefreshToken", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			storedToken = args.Get(2).(*string)
			storedExpiry = args.Get(3).(*time.Time)
			user.RefreshToken = storedToken
			user.RefreshExpiry = storedExpiry
		}).Return(nil)
	userRepo.On("FindByID", mock.Anything, "user-1").Return(user, nil)

	pair, _, err := svc.Login(context.Background(), "ada@example.com", "password123")
	require.NoError(t, err)
	oldRefresh := pair.RefreshToken

	newPair, _, err := svc.Refresh(context.Background(), pair.AccessToken, oldRefresh)
	require.NoError(t, err)

	assert.NotEqual(t, oldRefresh, newPair.RefreshToken)
	assert.Equal(t, *storedToken, newPair.RefreshToken)

	// the old refresh token no longer matches the stored one
	_, _, err = svc.Refresh(context.Background(), newPair.AccessToken, oldRefresh)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefresh_ExpiredRefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	hash, _ := auth.HashPassword("password123")
	user := &models.User{ID: "user-1", Email: "ada@example.com", Password: hash}

	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(user, nil)
	userRepo.On("SetRefreshToken", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			user.RefreshToken = args.Get(2).(*string)
			expired := time.Now().Add(-time.Hour)
			user.RefreshExpiry = &expired
		}).Return(nil)
	userRepo.On("FindByID", mock.Anything, "user-1").Return(user, nil)

	pair, _, err := svc.Login(context.Background(), "ada@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Refresh(context.Background(), pair.AccessToken, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefresh_GarbageAccessToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	_, _, err := svc.Refresh(context.Background(), "not-a-jwt", "whatever")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_ClearsStoredRefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	userRepo.On("SetRefreshToken", mock.Anything, "user-1", (*string)(nil), (*time.Time)(nil)).Return(nil)

	err := svc.Logout(context.Background(), "user-1")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testConfig())

	otherCfg := testConfig()
	otherCfg.JWTSecret = "another-secret-another-secret-another!"
	otherSvc := NewAuthService(userRepo, otherCfg)

	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("SetRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	pair, _, err := svc.Register(context.Background(), "ada@example.com", "password123", "Ada", "Lovelace")
	require.NoError(t, err)

	_, err = otherSvc.ValidateToken(pair.AccessToken)
	assert.Error(t, err)
}
