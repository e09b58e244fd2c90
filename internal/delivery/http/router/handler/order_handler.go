package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	custommiddleware "printdesk/internal/delivery/http/middleware"
	"printdesk/internal/delivery/http/response"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// documentFormField is the multipart field name carrying the uploaded file.
const documentFormField = "document"

// OrderHandler holds dependencies for customer order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles order placement. The request is multipart form data: the
// document file plus the print option fields.
func (h *OrderHandler) Create(c echo.Context) error {
	caller := custommiddleware.CallerIdentity(c)

	fileHeader, err := c.FormFile(documentFormField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrMissingDocument)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(domainerrors.ErrMissingDocument.WrapMessage("open uploaded document"))
	}
	defer file.Close()

	// An absent copies field means one copy; an explicit value, including
	// zero, is passed through for validation.
	copies := 1
	if raw := strings.TrimSpace(c.FormValue("numberOfCopies")); raw != "" {
		copies, err = strconv.Atoi(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "numberOfCopies must be a number")
		}
	}

	input := usecase.CreateOrderInput{
		Document: &usecase.DocumentUpload{
			Filename:  fileHeader.Filename,
			MediaType: fileHeader.Header.Get(echo.HeaderContentType),
			Size:      fileHeader.Size,
			Content:   file,
		},
		NumberOfCopies:  copies,
		PaperSize:       c.FormValue("paperSize"),
		PrintSide:       c.FormValue("printSide"),
		PrintColor:      c.FormValue("printColor"),
		Binding:         c.FormValue("binding"),
		Urgency:         c.FormValue("urgency"),
		PaymentMethod:   c.FormValue("paymentMethod"),
		AdditionalNotes: c.FormValue("additionalNotes"),
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

// ListOwn handles listing the caller's own orders, newest-first.
func (h *OrderHandler) ListOwn(c echo.Context) error {
	caller := custommiddleware.CallerIdentity(c)

	orders, err := h.uc.ListOwnOrders(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

// Get handles fetching a single order the caller may access.
func (h *OrderHandler) Get(c echo.Context) error {
	caller := custommiddleware.CallerIdentity(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	order, err := h.uc.GetOrder(c.Request().Context(), caller, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "")
}

// Document streams the stored document of an order back to the caller.
func (h *OrderHandler) Document(c echo.Context) error {
	caller := custommiddleware.CallerIdentity(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	doc, content, err := h.uc.OpenDocument(c.Request().Context(), caller, orderID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer content.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename=%q`, doc.Filename))

	return c.Stream(http.StatusOK, doc.MediaType, content)
}

// PaymentQR renders the UPI payment QR code for a completed order as PNG.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	caller := custommiddleware.CallerIdentity(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	png, err := h.uc.PaymentQR(c.Request().Context(), caller, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
