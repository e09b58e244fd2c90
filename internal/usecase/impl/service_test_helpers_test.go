package impl

import (
	"io"
	"log/slog"
	"time"

	"printdesk/config"
	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
			TokenTTL:   30 * 24 * time.Hour,
		},
		Upload: &config.UploadConfig{
			Dir:         "uploads",
			MaxFileSize: 10 << 20,
		},
	}
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		Name:        "Test Student",
		Email:       "student@college.edu",
		PhoneNumber: "+919876543210",
		Department:  "CSE",
	}
}

func newUserIdentity(user *entity.User) *entity.Identity {
	return &entity.Identity{ID: user.ID, Role: entity.RoleUser, User: user}
}

func newAdminIdentity() *entity.Identity {
	admin := &entity.Admin{
		ID:          uuid.New(),
		Username:    "admin",
		ShopName:    "College Xerox Shop",
		PhoneNumber: "+919876543210",
		UPIID:       "xeroxshop@upi",
	}

	return &entity.Identity{ID: admin.ID, Role: entity.RoleAdmin, Admin: admin}
}

func newPendingOrder(ownerID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Document: entity.Document{
			Filename:  "doc-abc.pdf",
			Key:       "doc-abc.pdf",
			MediaType: "application/pdf",
			Size:      2048,
		},
		NumberOfCopies: 1,
		PaperSize:      entity.PaperSizeA4,
		PrintSide:      entity.PrintSideSingle,
		PrintColor:     entity.PrintColorBlackWhite,
		Binding:        entity.BindingNone,
		Urgency:        entity.UrgencyNormal,
		Status:         entity.OrderStatusPending,
		PaymentMethod:  entity.PaymentMethodPending,
		PaymentStatus:  entity.PaymentStatusPending,
	}
}
