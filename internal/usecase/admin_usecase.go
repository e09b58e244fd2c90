package usecase

import (
	"context"

	"github.com/google/uuid"

	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/repository"
)

// CompleteOrderInput defines the data required to close out an order.
// Message is optional; when empty a default pickup message is generated
// from the final amount.
type CompleteOrderInput struct {
	OrderID     uuid.UUID
	TotalAmount float64
	Message     string
}

// AdminUsecase defines the interface for shop-side order management.
// The delivery layer guards these behind the admin role.
type AdminUsecase interface {
	// ListAllOrders returns every order in the system, newest-first.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// SetOrderStatus moves an order to the given lifecycle status.
	// Any valid status value is accepted regardless of the current one;
	// transitioning to completed stamps the completion time.
	SetOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// CompleteOrder marks an order completed with its final amount and an
	// optional pickup message. Completing twice overwrites the amount.
	CompleteOrder(ctx context.Context, input CompleteOrderInput) (*entity.Order, error)

	// Stats returns the dashboard numbers: per-status counts and revenue.
	Stats(ctx context.Context) (*repository.OrderStats, error)
}
