// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new customer account.
type RegisterUserInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Department  string
}

// LoginUserInput defines the data required for a customer to log in.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginAdminInput defines the data required for the shop admin to log in.
type LoginAdminInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user together with their first token.
type RegisterOutput struct {
	User      *entity.User
	Token     string
	ExpiresIn time.Duration
}

// LoginUserOutput returns the authenticated user and their bearer token.
type LoginUserOutput struct {
	User      *entity.User
	Token     string
	ExpiresIn time.Duration
}

// LoginAdminOutput returns the authenticated admin and their bearer token.
type LoginAdminOutput struct {
	Admin     *entity.Admin
	Token     string
	ExpiresIn time.Duration
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*RegisterOutput, error)
	LoginUser(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error)
	LoginAdmin(ctx context.Context, input LoginAdminInput) (*LoginAdminOutput, error)

	// ResolveIdentity turns validated token claims into a live identity,
	// confirming the account still exists. Deleted accounts fail here even
	// when their token has not expired yet.
	ResolveIdentity(ctx context.Context, claims *service.Claims) (*entity.Identity, error)
}
