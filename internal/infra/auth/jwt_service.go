// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"printdesk/config"
	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/service"
	"printdesk/internal/errors"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Secret key for signing bearer tokens.
	tokenTTL time.Duration // Time-to-live for bearer tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}
	return &jwtService{
		secret:   cfg.SecretKey.Access,
		tokenTTL: ttl,
	}, nil
}

// GenerateToken creates a signed bearer token carrying the subject's identity and role.
func (s *jwtService) GenerateToken(subjectID uuid.UUID, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subjectID.String(),            // Subject (who the token is for)
		"role": role.String(),                 // Role decides which routes the bearer may call
		"iat":  now.Unix(),                    // Issued At
		"exp":  now.Add(s.tokenTTL).Unix(),    // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and extracts its claims.
// Any parse, signature, or expiry failure maps to ErrInvalidToken so callers
// cannot distinguish the reason.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}
	subjectID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	roleClaim, ok := mapClaims["role"].(string)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}
	role := entity.Role(roleClaim)
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidToken
	}

	return &service.Claims{
		SubjectID: subjectID,
		Role:      role,
	}, nil
}

// TokenDuration returns the configured lifetime for issued tokens.
func (s *jwtService) TokenDuration() time.Duration {
	return s.tokenTTL
}
