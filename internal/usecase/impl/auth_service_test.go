package impl

import (
	"context"
	"testing"
	"time"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/domain/service"
	mockRepo "printdesk/internal/mocks/repository"
	mockSvc "printdesk/internal/mocks/service"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	adminRepo    *mockRepo.MockAdminRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		AdminRepo:    adminRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:        "Test Student",
		Email:       "Student@College.edu",
		Password:    "secret-password",
		PhoneNumber: "+919876543210",
		Department:  "CSE",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "student@college.edu").
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), entity.RoleUser).
		Return("signed.jwt.token", nil)
	fx.tokenService.EXPECT().TokenDuration().Return(30 * 24 * time.Hour)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	// Email is stored lowercased.
	assert.Equal(t, "student@college.edu", output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, 30*24*time.Hour, output.ExpiresIn)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test Student",
		Email:    "student@college.edu",
		Password: "secret-password",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(newTestUser(), nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_LoginUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	user.PasswordHash = "hashed_password"

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret-password", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID, entity.RoleUser).Return("signed.jwt.token", nil)
	fx.tokenService.EXPECT().TokenDuration().Return(30 * 24 * time.Hour)

	output, err := fx.service.LoginUser(ctx, usecase.LoginUserInput{
		Email:    user.Email,
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestAuthService_LoginUser_CredentialFailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	user.PasswordHash = "hashed_password"

	// Unknown email.
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@college.edu").
		Return(nil, repository.ErrUserNotFound)

	_, errUnknown := fx.service.LoginUser(ctx, usecase.LoginUserInput{
		Email:    "nobody@college.edu",
		Password: "whatever",
	})

	// Known email, wrong password.
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-password", "hashed_password").Return(false)

	_, errWrongPassword := fx.service.LoginUser(ctx, usecase.LoginUserInput{
		Email:    user.Email,
		Password: "wrong-password",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPassword)
	assert.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, domainerrors.ErrInvalidCredentials)
	// Both failure modes must present the same error to the caller.
	assert.Equal(t, errUnknown.Error(), errWrongPassword.Error())
}

func TestAuthService_LoginAdmin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := &entity.Admin{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: "hashed_password",
		ShopName:     "College Xerox Shop",
	}

	fx.adminRepo.EXPECT().FindByUsername(ctx, "admin").Return(admin, nil)
	fx.hasher.EXPECT().Check("admin123", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateToken(admin.ID, entity.RoleAdmin).Return("signed.jwt.token", nil)
	fx.tokenService.EXPECT().TokenDuration().Return(30 * 24 * time.Hour)

	output, err := fx.service.LoginAdmin(ctx, usecase.LoginAdminInput{
		Username: "admin",
		Password: "admin123",
	})

	require.NoError(t, err)
	assert.Equal(t, admin.ID, output.Admin.ID)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestAuthService_LoginAdmin_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.adminRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrAdminNotFound)

	output, err := fx.service.LoginAdmin(ctx, usecase.LoginAdminInput{
		Username: "ghost",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ResolveIdentity_User(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	identity, err := fx.service.ResolveIdentity(ctx, &service.Claims{
		SubjectID: user.ID,
		Role:      entity.RoleUser,
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, entity.RoleUser, identity.Role)
	assert.NotNil(t, identity.User)
	assert.Nil(t, identity.Admin)
}

func TestAuthService_ResolveIdentity_DeletedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	subjectID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, subjectID).
		Return(nil, repository.ErrUserNotFound)

	identity, err := fx.service.ResolveIdentity(ctx, &service.Claims{
		SubjectID: subjectID,
		Role:      entity.RoleUser,
	})

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_ResolveIdentity_Admin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := &entity.Admin{ID: uuid.New(), Username: "admin"}

	fx.adminRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	identity, err := fx.service.ResolveIdentity(ctx, &service.Claims{
		SubjectID: admin.ID,
		Role:      entity.RoleAdmin,
	})

	require.NoError(t, err)
	assert.True(t, identity.IsAdmin())
	assert.NotNil(t, identity.Admin)
}

func TestAuthService_ResolveIdentity_UnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	identity, err := fx.service.ResolveIdentity(context.Background(), &service.Claims{
		SubjectID: uuid.New(),
		Role:      entity.Role("superuser"),
	})

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_RegisterUser_TransactionFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(dbErr)

	output, err := fx.service.RegisterUser(ctx, usecase.RegisterUserInput{
		Name:     "Test Student",
		Email:    "student@college.edu",
		Password: "secret-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, dbErr)
}
