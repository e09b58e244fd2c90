package handler

import (
	"log/slog"
	"net/http"

	"printdesk/internal/delivery/http/response"
	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// setStatusRequest is the JSON body for moving an order to a new status.
type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// completeOrderRequest is the JSON body for closing out an order.
type completeOrderRequest struct {
	TotalAmount  float64 `json:"totalAmount" validate:"gte=0"`
	AdminMessage string  `json:"adminMessage"`
}

// AdminHandler holds dependencies for shop-side order management handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOrders handles listing every order in the system, newest-first.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

// SetStatus handles moving an order to a new lifecycle status.
func (h *AdminHandler) SetStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.SetOrderStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order status updated")
}

// Complete handles marking an order completed with its final amount.
func (h *AdminHandler) Complete(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	var req completeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completion input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.CompleteOrder(c.Request().Context(), usecase.CompleteOrderInput{
		OrderID:     orderID,
		TotalAmount: req.TotalAmount,
		Message:     req.AdminMessage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order completed")
}

// Stats handles the admin dashboard summary request.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStatsView(stats), "")
}
