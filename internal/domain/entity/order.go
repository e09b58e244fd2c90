package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus drives the order lifecycle state machine:
// pending -> processing -> completed, with pending|processing -> cancelled.
// completed and cancelled are terminal.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// AllOrderStatuses lists every valid status, in lifecycle order.
// Statistics reports use it to emit a count per status.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaperSize is the page format an order is printed on.
type PaperSize string

const (
	PaperSizeA4     PaperSize = "a4"
	PaperSizeA3     PaperSize = "a3"
	PaperSizeLetter PaperSize = "letter"
	PaperSizeLegal  PaperSize = "legal"
)

func (p PaperSize) String() string { return string(p) }

// IsValid checks if the PaperSize is a valid value.
func (p PaperSize) IsValid() bool {
	switch p {
	case PaperSizeA4, PaperSizeA3, PaperSizeLetter, PaperSizeLegal:
		return true
	default:
		return false
	}
}

// PrintSide selects single- or double-sided printing.
type PrintSide string

const (
	PrintSideSingle PrintSide = "single"
	PrintSideDouble PrintSide = "double"
)

func (p PrintSide) String() string { return string(p) }

// IsValid checks if the PrintSide is a valid value.
func (p PrintSide) IsValid() bool {
	return p == PrintSideSingle || p == PrintSideDouble
}

// PrintColor selects black-and-white or color printing.
type PrintColor string

const (
	PrintColorBlackWhite PrintColor = "blackwhite"
	PrintColorColor      PrintColor = "color"
)

func (p PrintColor) String() string { return string(p) }

// IsValid checks if the PrintColor is a valid value.
func (p PrintColor) IsValid() bool {
	return p == PrintColorBlackWhite || p == PrintColorColor
}

// Binding is the finishing applied to the printed pages.
type Binding string

const (
	BindingNone   Binding = "none"
	BindingSpiral Binding = "spiral"
	BindingStaple Binding = "staple"
	BindingTape   Binding = "tape"
)

func (b Binding) String() string { return string(b) }

// IsValid checks if the Binding is a valid value.
func (b Binding) IsValid() bool {
	switch b {
	case BindingNone, BindingSpiral, BindingStaple, BindingTape:
		return true
	default:
		return false
	}
}

// Urgency is the requested pickup window for an order.
type Urgency string

const (
	UrgencyUrgent  Urgency = "urgent"
	UrgencyLunch   Urgency = "lunch"
	UrgencyEvening Urgency = "evening"
	UrgencyNormal  Urgency = "normal"
)

func (u Urgency) String() string { return string(u) }

// IsValid checks if the Urgency is a valid value.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyUrgent, UrgencyLunch, UrgencyEvening, UrgencyNormal:
		return true
	default:
		return false
	}
}

// PaymentMethod records how the customer intends to pay.
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodOnline  PaymentMethod = "online"
	PaymentMethodPending PaymentMethod = "pending"
)

func (m PaymentMethod) String() string { return string(m) }

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodOnline, PaymentMethodPending:
		return true
	default:
		return false
	}
}

// PaymentStatus records whether the order has been paid for.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) String() string { return string(s) }

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid
}

// Document describes the uploaded file attached to an order. Exactly one
// document exists per order and it is required at creation.
type Document struct {
	Filename  string // The storage filename, e.g. "doc-<uuid>.pdf".
	Key       string // The blob-store key the content lives under.
	MediaType string // The upload's media type, e.g. "application/pdf".
	Size      int64  // Content length in bytes.
}

// Order is a single print job request with its options and lifecycle status.
//
// UserName, UserEmail and UserPhone are a snapshot of the owner taken at
// creation time. They are stale by design: later edits to the user account do
// not propagate back onto existing orders.
type Order struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID // References the User who placed the order; immutable.
	UserName        string
	UserEmail       string
	UserPhone       string
	Document        Document
	NumberOfCopies  int
	PaperSize       PaperSize
	PrintSide       PrintSide
	PrintColor      PrintColor
	Binding         Binding
	Urgency         Urgency
	AdditionalNotes string
	Status          OrderStatus
	TotalAmount     float64 // Meaningful once Status reaches completed; 0 before that.
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	AdminMessage    string
	CreatedAt       time.Time
	CompletedAt     *time.Time // Set exactly when Status transitions to completed.
}

// MarkCompleted moves the order to the completed state at the given instant.
// Calling it again overwrites the previous amount and completion timestamp;
// the operation is deliberately not idempotent.
func (o *Order) MarkCompleted(amount float64, message string, at time.Time) {
	o.Status = OrderStatusCompleted
	o.TotalAmount = amount
	o.AdminMessage = message
	o.CompletedAt = &at
}
