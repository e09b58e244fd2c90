package repository

import (
	"context"
	"errors"

	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is a domain-specific error returned when an admin is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the standard operations for admin persistence.
type AdminRepository interface {
	// FindByID retrieves a single admin by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByUsername retrieves a single admin by their login username.
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// FindShopAdmin retrieves the shop's admin account. The shop is single
	// tenant; when several admin records exist the oldest one wins.
	FindShopAdmin(ctx context.Context) (*entity.Admin, error)

	// Create persists a new admin entity to the storage.
	Create(ctx context.Context, admin *entity.Admin) error
}
