package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "printdesk/internal/delivery/context"
	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/usecase"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		orderRepo: params.OrderRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAllOrders returns every order in the system, newest-first.
func (srv *adminService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list all orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// SetOrderStatus moves an order to the given lifecycle status. The shop runs
// informally, so any valid status is accepted regardless of the current one;
// moving to completed stamps the completion time, even on a re-completion.
func (srv *adminService) SetOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status")
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if status == entity.OrderStatusCompleted {
		now := srv.now()
		order.CompletedAt = &now
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to update order status", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("status", status.String()))

	return order, nil
}

// CompleteOrder marks an order completed with its final amount and pickup
// message. Completing an already-completed order overwrites the previous
// amount and timestamp.
func (srv *adminService) CompleteOrder(ctx context.Context, input usecase.CompleteOrderInput) (*entity.Order, error) {
	if input.TotalAmount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("totalAmount must not be negative")
	}

	order, err := srv.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	message := input.Message
	if message == "" {
		message = defaultCompletionMessage(input.TotalAmount)
	}

	order.MarkCompleted(input.TotalAmount, message, srv.now())

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to complete order", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order completed", slog.Any("orderID", input.OrderID), slog.Float64("totalAmount", input.TotalAmount))

	return order, nil
}

// Stats returns the dashboard numbers: per-status counts and revenue over
// completed orders.
func (srv *adminService) Stats(ctx context.Context) (*repository.OrderStats, error) {
	stats, err := srv.orderRepo.Stats(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to compute order stats", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to compute order stats")
	}

	return stats, nil
}

func (srv *adminService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// defaultCompletionMessage is shown to the customer when the admin does not
// write their own pickup note.
func defaultCompletionMessage(amount float64) string {
	return "Your order is ready! Total amount: ₹" + strconv.FormatFloat(amount, 'f', -1, 64) + ". Please pay via GPay or Cash at the shop."
}
