// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "printdesk/internal/delivery/context"
	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/domain/service"
	"printdesk/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a new customer account and issues its first token.
// The duplicate-email check and the insert run in one transaction so two
// concurrent registrations cannot both succeed; the unique index on email
// backstops the race.
func (srv *authService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting user registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		PhoneNumber:  input.PhoneNumber,
		Department:   input.Department,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for existing user")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		if !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))
		}

		return nil, err
	}

	token, err := srv.tokenService.GenerateToken(newUser.ID, entity.RoleUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token after registration")
	}

	srv.log(ctx).Debug("User registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{
		User:      newUser,
		Token:     token,
		ExpiresIn: srv.tokenService.TokenDuration(),
	}, nil
}

// LoginUser verifies a customer's credentials and issues a token.
// Unknown email and wrong password return the same error so callers cannot
// probe which addresses are registered.
func (srv *authService) LoginUser(ctx context.Context, input usecase.LoginUserInput) (*usecase.LoginUserOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Failed to look up user during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID, entity.RoleUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token during login")
	}

	srv.log(ctx).Debug("User login completed", slog.Any("userID", user.ID))

	return &usecase.LoginUserOutput{
		User:      user,
		Token:     token,
		ExpiresIn: srv.tokenService.TokenDuration(),
	}, nil
}

// LoginAdmin verifies the shop admin's credentials and issues a token.
func (srv *authService) LoginAdmin(ctx context.Context, input usecase.LoginAdminInput) (*usecase.LoginAdminOutput, error) {
	admin, err := srv.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Failed to look up admin during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up admin during login")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(admin.ID, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token during admin login")
	}

	srv.log(ctx).Debug("Admin login completed", slog.Any("adminID", admin.ID))

	return &usecase.LoginAdminOutput{
		Admin:     admin,
		Token:     token,
		ExpiresIn: srv.tokenService.TokenDuration(),
	}, nil
}

// ResolveIdentity loads the account behind validated claims. A token whose
// account no longer exists resolves to ErrInvalidToken.
func (srv *authService) ResolveIdentity(ctx context.Context, claims *service.Claims) (*entity.Identity, error) {
	switch claims.Role {
	case entity.RoleUser:
		user, err := srv.userRepo.FindByID(ctx, claims.SubjectID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrInvalidToken
			}

			return nil, errors.Wrap(err, "failed to resolve user identity")
		}

		return &entity.Identity{ID: user.ID, Role: entity.RoleUser, User: user}, nil

	case entity.RoleAdmin:
		admin, err := srv.adminRepo.FindByID(ctx, claims.SubjectID)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return nil, domainerrors.ErrInvalidToken
			}

			return nil, errors.Wrap(err, "failed to resolve admin identity")
		}

		return &entity.Identity{ID: admin.ID, Role: entity.RoleAdmin, Admin: admin}, nil

	default:
		return nil, domainerrors.ErrInvalidToken
	}
}

// normalizeEmail lowercases and trims an email so lookups are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
