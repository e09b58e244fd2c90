package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	mockusecase "printdesk/internal/mocks/usecase"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminHandler_ListOrders(t *testing.T) {
	uc := mockusecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newTestLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/admin/orders", nil, "")

	order := sampleOrder(uuid.New())
	uc.EXPECT().
		ListAllOrders(mock.Anything).
		Return([]*entity.Order{order}, nil)

	err := handler.ListOrders(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), order.ID.String())
}

func TestAdminHandler_SetStatus_Success(t *testing.T) {
	uc := mockusecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newTestLogger())

	order := sampleOrder(uuid.New())
	order.Status = entity.OrderStatusProcessing

	c, rec := newEchoContext(t, http.MethodPut, "/api/admin/orders/x/status", strings.NewReader(`{"status":"processing"}`), "application/json")
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())

	uc.EXPECT().
		SetOrderStatus(mock.Anything, order.ID, entity.OrderStatusProcessing).
		Return(order, nil)

	err := handler.SetStatus(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"processing"`)
}

func TestAdminHandler_SetStatus_InvalidStatus(t *testing.T) {
	uc := mockusecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newTestLogger())

	orderID := uuid.New()
	c, _ := newEchoContext(t, http.MethodPut, "/api/admin/orders/x/status", strings.NewReader(`{"status":"shipped"}`), "application/json")
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	uc.EXPECT().
		SetOrderStatus(mock.Anything, orderID, entity.OrderStatus("shipped")).
		Return(nil, domainerrors.ErrValidationFailed)

	err := handler.SetStatus(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminHandler_Complete_Success(t *testing.T) {
	uc := mockusecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newTestLogger())

	completedAt := time.Now()
	order := sampleOrder(uuid.New())
	order.Status = entity.OrderStatusCompleted
	order.TotalAmount = 150
	order.AdminMessage = "Your order is ready! Total amount: ₹150. Please pay via GPay or Cash at the shop."
	order.CompletedAt = &completedAt

	c, rec := newEchoContext(t, http.MethodPut, "/api/admin/orders/x/complete", strings.NewReader(`{"totalAmount":150}`), "application/json")
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())

	uc.EXPECT().
		CompleteOrder(mock.Anything, usecase.CompleteOrderInput{OrderID: order.ID, TotalAmount: 150}).
		Return(order, nil)

	err := handler.Complete(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
	assert.Contains(t, rec.Body.String(), `"totalAmount":150`)
	assert.Contains(t, rec.Body.String(), "Your order is ready!")
}

func TestAdminHandler_Complete_UnknownOrder(t *testing.T) {
	uc := mockusecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newTestLogger())

	orderID := uuid.New()
	c, _ := newEchoContext(t, http.MethodPut, "/api/admin/orders/x/complete", strings.NewReader(`{"totalAmount":90}`), "application/json")
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	uc.EXPECT().
		CompleteOrder(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrOrderNotFound)

	err := handler.Complete(c)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestAdminHandler_Stats(t *testing.T) {
	uc := mockusecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newTestLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/admin/stats", nil, "")

	uc.EXPECT().
		Stats(mock.Anything).
		Return(&repository.OrderStats{
			TotalOrders:      10,
			PendingOrders:    4,
			ProcessingOrders: 2,
			CompletedOrders:  3,
			CancelledOrders:  1,
			TotalRevenue:     450.5,
		}, nil)

	err := handler.Stats(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalOrders":10`)
	assert.Contains(t, rec.Body.String(), `"completedOrders":3`)
	assert.Contains(t, rec.Body.String(), `"totalRevenue":450.5`)
}
