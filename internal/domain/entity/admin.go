package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents the shop administrator account. The shop runs as a single
// tenant, so in practice one admin record exists, but nothing in the domain
// enforces that beyond the unique username.
type Admin struct {
	ID           uuid.UUID // The unique identifier for the admin, assigned at creation.
	Username     string    // The admin's login identifier; globally unique among admins.
	PasswordHash string    // Stores the bcrypt-hashed password; never serialized outward.
	ShopName     string    // The print shop's display name, used on payment QR codes.
	PhoneNumber  string    // Contact number for the shop.
	UPIID        string    // The shop's UPI payment address, e.g. "xeroxshop@upi".
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
