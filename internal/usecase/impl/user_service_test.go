package impl

import (
	"context"
	"testing"
	"time"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/domain/service"
	mockRepo "checkin/internal/mocks/repository"
	mockSvc "checkin/internal/mocks/service"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

// expectTransaction wires the transaction manager to run the callback against
// a repository factory backed by the fixture mocks.
func (f userServiceFixtures) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(f.userRepo).Maybe()
	factory.EXPECT().NewAuthRepository().Return(f.authRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alex",
		Email:    "  Alex@Example.COM ",
		Password: "Sup3rSecret",
	}

	fx.hasher.EXPECT().Hash("Sup3rSecret").Return("hashed-password", nil)
	fx.expectTransaction(t)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "alex@example.com").
		Return(nil, repository.ErrAuthNotFound)

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
			assert.Equal(t, "alex@example.com", auth.ProviderUserID)
			assert.Equal(t, "hashed-password", auth.PasswordHash)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "Alex", output.User.Name)
	assert.Equal(t, "alex@example.com", output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Sup3rSecret").Return("hashed-password", nil)
	fx.expectTransaction(t)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "taken@example.com").
		Return(&entity.Authentication{}, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alex",
		Email:    "taken@example.com",
		Password: "Sup3rSecret",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("short").
		Return("", errors.New("password must be at least 8 characters long"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "short",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "at least 8 characters")
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: "alex@example.com",
		PasswordHash:   "stored-hash",
	}
	user := &entity.User{ID: userID, Name: "Alex", Email: "alex@example.com"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "alex@example.com").
		Return(authRecord, nil)
	fx.hasher.EXPECT().Compare("stored-hash", "Sup3rSecret").Return(nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)

	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, hashRefreshToken("refresh-token"), token.TokenHash)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Alex@example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever1A",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "alex@example.com").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "stored-hash"}, nil)
	fx.hasher.EXPECT().Compare("stored-hash", "wrong").Return(errors.New("mismatch"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alex@example.com"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashRefreshToken("refresh-token")).
		Return(&entity.RefreshToken{UserID: userID}, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "unused-refresh", nil)

	output, err := fx.service.Refresh(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	// The refresh token is not rotated.
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_Refresh_SessionRevoked(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashRefreshToken("refresh-token")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.Refresh(ctx, "refresh-token")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("jwt.Parse: token is malformed"))

	output, err := fx.service.Refresh(ctx, "garbage")
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", appErr.ErrorCode())
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	sessionID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashRefreshToken("refresh-token")).
		Return(&entity.RefreshToken{ID: sessionID}, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, sessionID).Return(nil)

	err := fx.service.Logout(ctx, "refresh-token")
	require.NoError(t, err)
}

func TestUserService_Logout_AlreadyLoggedOut(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashRefreshToken("refresh-token")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, "refresh-token")
	require.NoError(t, err)
}
