package service

import (
	"time"

	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the verified content of a token: who the holder is and which role
// they were issued the token under.
type Claims struct {
	SubjectID uuid.UUID
	Role      entity.Role
}

// TokenService defines the interface for issuing and verifying signed,
// time-limited identity assertions. This abstracts the token format (JWT)
// from the use cases.
type TokenService interface {
	// GenerateToken mints a signed token encoding the subject id and role.
	GenerateToken(subjectID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
