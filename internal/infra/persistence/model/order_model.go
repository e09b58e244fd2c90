package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. The owner snapshot columns
// (user_name, user_email, user_phone) are copied from the users row at
// creation time and never updated afterwards.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	UserName        string    `gorm:"type:varchar(100);not null"`
	UserEmail       string    `gorm:"type:varchar(255);not null"`
	UserPhone       string    `gorm:"type:varchar(20);not null"`
	DocFilename     string    `gorm:"type:varchar(255);not null"`
	DocKey          string    `gorm:"type:varchar(255);not null"`
	DocMediaType    string    `gorm:"type:varchar(100);not null"`
	DocSize         int64     `gorm:"not null"`
	NumberOfCopies  int       `gorm:"not null;default:1"`
	PaperSize       string    `gorm:"type:varchar(16);not null"`
	PrintSide       string    `gorm:"type:varchar(16);not null"`
	PrintColor      string    `gorm:"type:varchar(16);not null"`
	Binding         string    `gorm:"type:varchar(16);not null"`
	Urgency         string    `gorm:"type:varchar(16);not null"`
	AdditionalNotes string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(16);not null;index;default:'pending'"`
	TotalAmount     float64   `gorm:"not null;default:0"`
	PaymentMethod   string    `gorm:"type:varchar(16);not null;default:'pending'"`
	PaymentStatus   string    `gorm:"type:varchar(16);not null;default:'pending'"`
	AdminMessage    string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
	CompletedAt     *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
