package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	"printdesk/internal/domain/entity"
)

// DocumentUpload carries the uploaded file for a new order. Size is taken
// from the multipart part header and re-checked against the configured limit.
type DocumentUpload struct {
	Filename  string
	MediaType string
	Size      int64
	Content   io.Reader
}

// CreateOrderInput defines the data required to place a print order.
// The option fields arrive as raw form strings. NumberOfCopies, PrintSide,
// and PrintColor are mandatory; the other options fall back to shop
// defaults when empty. Invalid values are rejected.
type CreateOrderInput struct {
	Document        *DocumentUpload
	NumberOfCopies  int
	PaperSize       string
	PrintSide       string
	PrintColor      string
	Binding         string
	Urgency         string
	PaymentMethod   string
	AdditionalNotes string
}

// OrderUsecase defines the interface for customer-facing order operations.
// Every method takes the caller's resolved identity so ownership checks
// happen in one place.
type OrderUsecase interface {
	// CreateOrder validates the upload and options, stores the document,
	// and persists a new pending order owned by the caller.
	CreateOrder(ctx context.Context, caller *entity.Identity, input CreateOrderInput) (*entity.Order, error)

	// ListOwnOrders returns the caller's orders, newest-first.
	ListOwnOrders(ctx context.Context, caller *entity.Identity) ([]*entity.Order, error)

	// GetOrder returns a single order if the caller owns it or is the admin.
	GetOrder(ctx context.Context, caller *entity.Identity, orderID uuid.UUID) (*entity.Order, error)

	// OpenDocument streams the stored document of an order the caller may access.
	OpenDocument(ctx context.Context, caller *entity.Identity, orderID uuid.UUID) (*entity.Document, io.ReadCloser, error)

	// PaymentQR renders the UPI payment QR code for a completed order.
	// Orders that are not completed yet have no payable amount.
	PaymentQR(ctx context.Context, caller *entity.Identity, orderID uuid.UUID) ([]byte, error)
}
