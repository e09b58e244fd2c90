package postgres

import (
	"context"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByOwner retrieves every order placed by the given user, newest-first.
func (repo *orderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&orderMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by owner")
	}

	return toOrderDomainList(orderMs), nil
}

// ListAll retrieves every order in the system, newest-first.
func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return toOrderDomainList(orderMs), nil
}

// Create persists a new order entity to the database.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("order owner does not exist")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// Update persists the full current state of an existing order.
// Concurrent updates are last-write-wins; there is no version token.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":         orderM.Status,
			"total_amount":   orderM.TotalAmount,
			"payment_method": orderM.PaymentMethod,
			"payment_status": orderM.PaymentStatus,
			"admin_message":  orderM.AdminMessage,
			"completed_at":   orderM.CompletedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Stats computes the per-status order counts and the revenue summed over
// completed orders, in a single grouped query.
func (repo *orderRepository) Stats(ctx context.Context) (*repository.OrderStats, error) {
	var rows []struct {
		Status string
		Count  int64
		Amount float64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS amount").
		Group("status").
		Scan(&rows).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to compute order stats")
	}

	stats := &repository.OrderStats{}
	for _, row := range rows {
		stats.TotalOrders += row.Count
		switch entity.OrderStatus(row.Status) {
		case entity.OrderStatusPending:
			stats.PendingOrders = row.Count
		case entity.OrderStatusProcessing:
			stats.ProcessingOrders = row.Count
		case entity.OrderStatusCompleted:
			stats.CompletedOrders = row.Count
			// Only completed orders carry a meaningful total amount.
			stats.TotalRevenue = row.Amount
		case entity.OrderStatusCancelled:
			stats.CancelledOrders = row.Count
		}
	}

	return stats, nil
}

// toOrderDomain maps a persistence model to the pure domain entity.
func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:        orderM.ID,
		OwnerID:   orderM.OwnerID,
		UserName:  orderM.UserName,
		UserEmail: orderM.UserEmail,
		UserPhone: orderM.UserPhone,
		Document: entity.Document{
			Filename:  orderM.DocFilename,
			Key:       orderM.DocKey,
			MediaType: orderM.DocMediaType,
			Size:      orderM.DocSize,
		},
		NumberOfCopies:  orderM.NumberOfCopies,
		PaperSize:       entity.PaperSize(orderM.PaperSize),
		PrintSide:       entity.PrintSide(orderM.PrintSide),
		PrintColor:      entity.PrintColor(orderM.PrintColor),
		Binding:         entity.Binding(orderM.Binding),
		Urgency:         entity.Urgency(orderM.Urgency),
		AdditionalNotes: orderM.AdditionalNotes,
		Status:          entity.OrderStatus(orderM.Status),
		TotalAmount:     orderM.TotalAmount,
		PaymentMethod:   entity.PaymentMethod(orderM.PaymentMethod),
		PaymentStatus:   entity.PaymentStatus(orderM.PaymentStatus),
		AdminMessage:    orderM.AdminMessage,
		CreatedAt:       orderM.CreatedAt,
		CompletedAt:     orderM.CompletedAt,
	}
}

func toOrderDomainList(orderMs []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders
}

// fromOrderDomain maps a domain entity to its persistence model.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              order.ID,
		OwnerID:         order.OwnerID,
		UserName:        order.UserName,
		UserEmail:       order.UserEmail,
		UserPhone:       order.UserPhone,
		DocFilename:     order.Document.Filename,
		DocKey:          order.Document.Key,
		DocMediaType:    order.Document.MediaType,
		DocSize:         order.Document.Size,
		NumberOfCopies:  order.NumberOfCopies,
		PaperSize:       order.PaperSize.String(),
		PrintSide:       order.PrintSide.String(),
		PrintColor:      order.PrintColor.String(),
		Binding:         order.Binding.String(),
		Urgency:         order.Urgency.String(),
		AdditionalNotes: order.AdditionalNotes,
		Status:          order.Status.String(),
		TotalAmount:     order.TotalAmount,
		PaymentMethod:   order.PaymentMethod.String(),
		PaymentStatus:   order.PaymentStatus.String(),
		AdminMessage:    order.AdminMessage,
		CreatedAt:       order.CreatedAt,
		CompletedAt:     order.CompletedAt,
	}
}
