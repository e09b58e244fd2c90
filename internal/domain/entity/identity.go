package entity

import "github.com/google/uuid"

// Identity is the resolved result of a verified token: exactly one of User or
// Admin is set, matching Role. The access-control layer attaches it to each
// authenticated request.
type Identity struct {
	ID    uuid.UUID
	Role  Role
	User  *User  // Set when Role is RoleUser.
	Admin *Admin // Set when Role is RoleAdmin.
}

// IsAdmin reports whether this identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanAccessOrder reports whether this identity may read the given order.
// Admins may read every order; users only their own.
func (i *Identity) CanAccessOrder(o *Order) bool {
	if i.IsAdmin() {
		return true
	}

	return i.Role == RoleUser && o.OwnerID == i.ID
}
