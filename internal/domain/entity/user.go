// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a customer account that can authenticate and place print orders.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, assigned at creation.
	Name         string    // The user's display name, copied onto orders at creation time.
	Email        string    // The user's login identifier; globally unique among users.
	PasswordHash string    // Stores the bcrypt-hashed password; never serialized outward.
	PhoneNumber  string    // Contact number, copied onto orders at creation time.
	Department   string    // The user's college department, free text.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
