package repository

import (
	"context"
	"errors"

	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderStats aggregates the shop dashboard numbers: one count per lifecycle
// status plus the revenue summed over completed orders.
type OrderStats struct {
	TotalOrders      int64
	PendingOrders    int64
	ProcessingOrders int64
	CompletedOrders  int64
	CancelledOrders  int64
	TotalRevenue     float64
}

// OrderRepository defines the standard operations for order persistence.
// Orders are never deleted; the lifecycle only moves the status field.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByOwner retrieves every order placed by the given user,
	// newest-first by creation time.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error)

	// ListAll retrieves every order in the system, newest-first by creation time.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// Create persists a new order entity to the storage.
	Create(ctx context.Context, order *entity.Order) error

	// Update persists the full current state of an existing order.
	// Concurrent updates are last-write-wins; there is no version token.
	Update(ctx context.Context, order *entity.Order) error

	// Stats computes the per-status counts and completed-order revenue sum.
	Stats(ctx context.Context) (*OrderStats, error)
}
