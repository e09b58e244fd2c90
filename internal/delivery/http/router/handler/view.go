package handler

import (
	"time"

	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/repository"

	"github.com/google/uuid"
)

// The view types below are the JSON shapes handlers return. They exist so
// that domain entities never leak credential fields into responses.

// UserView is the outward representation of a customer account.
type UserView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Department  string    `json:"department,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AdminView is the outward representation of the shop admin account.
type AdminView struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	ShopName    string    `json:"shopName"`
	PhoneNumber string    `json:"phoneNumber"`
	UPIID       string    `json:"upiId"`
}

// AuthView pairs an account with its freshly issued bearer token.
type AuthView struct {
	User      *UserView  `json:"user,omitempty"`
	Admin     *AdminView `json:"admin,omitempty"`
	Token     string     `json:"token"`
	ExpiresIn int64      `json:"expiresIn"` // Lifetime in seconds.
}

// DocumentView describes the uploaded file attached to an order.
type DocumentView struct {
	Filename  string `json:"filename"`
	MediaType string `json:"mediaType"`
	Size      int64  `json:"size"`
}

// OrderView is the outward representation of a print order.
type OrderView struct {
	ID              uuid.UUID    `json:"id"`
	UserName        string       `json:"userName"`
	UserEmail       string       `json:"userEmail"`
	UserPhone       string       `json:"userPhone"`
	Document        DocumentView `json:"document"`
	NumberOfCopies  int          `json:"numberOfCopies"`
	PaperSize       string       `json:"paperSize"`
	PrintSide       string       `json:"printSide"`
	PrintColor      string       `json:"printColor"`
	Binding         string       `json:"binding"`
	Urgency         string       `json:"urgency"`
	AdditionalNotes string       `json:"additionalNotes,omitempty"`
	Status          string       `json:"status"`
	TotalAmount     float64      `json:"totalAmount"`
	PaymentMethod   string       `json:"paymentMethod"`
	PaymentStatus   string       `json:"paymentStatus"`
	AdminMessage    string       `json:"adminMessage,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	CompletedAt     *time.Time   `json:"completedAt,omitempty"`
}

// StatsView is the admin dashboard summary.
type StatsView struct {
	TotalOrders      int64   `json:"totalOrders"`
	PendingOrders    int64   `json:"pendingOrders"`
	ProcessingOrders int64   `json:"processingOrders"`
	CompletedOrders  int64   `json:"completedOrders"`
	CancelledOrders  int64   `json:"cancelledOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

func toUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Department:  u.Department,
		CreatedAt:   u.CreatedAt,
	}
}

func toAdminView(a *entity.Admin) *AdminView {
	if a == nil {
		return nil
	}

	return &AdminView{
		ID:          a.ID,
		Username:    a.Username,
		ShopName:    a.ShopName,
		PhoneNumber: a.PhoneNumber,
		UPIID:       a.UPIID,
	}
}

func toOrderView(o *entity.Order) *OrderView {
	if o == nil {
		return nil
	}

	return &OrderView{
		ID:        o.ID,
		UserName:  o.UserName,
		UserEmail: o.UserEmail,
		UserPhone: o.UserPhone,
		Document: DocumentView{
			Filename:  o.Document.Filename,
			MediaType: o.Document.MediaType,
			Size:      o.Document.Size,
		},
		NumberOfCopies:  o.NumberOfCopies,
		PaperSize:       o.PaperSize.String(),
		PrintSide:       o.PrintSide.String(),
		PrintColor:      o.PrintColor.String(),
		Binding:         o.Binding.String(),
		Urgency:         o.Urgency.String(),
		AdditionalNotes: o.AdditionalNotes,
		Status:          o.Status.String(),
		TotalAmount:     o.TotalAmount,
		PaymentMethod:   o.PaymentMethod.String(),
		PaymentStatus:   o.PaymentStatus.String(),
		AdminMessage:    o.AdminMessage,
		CreatedAt:       o.CreatedAt,
		CompletedAt:     o.CompletedAt,
	}
}

func toOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}

	return views
}

func toStatsView(s *repository.OrderStats) *StatsView {
	return &StatsView{
		TotalOrders:      s.TotalOrders,
		PendingOrders:    s.PendingOrders,
		ProcessingOrders: s.ProcessingOrders,
		CompletedOrders:  s.CompletedOrders,
		CancelledOrders:  s.CancelledOrders,
		TotalRevenue:     s.TotalRevenue,
	}
}
