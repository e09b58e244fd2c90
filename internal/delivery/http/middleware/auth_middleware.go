package middleware

import (
	"strings"

	"printdesk/internal/delivery/http/response"
	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"
	"printdesk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// IdentityKey is the echo.Context key the resolved caller identity is stored under.
const IdentityKey = "identity"

// AuthMiddleware provides middleware for bearer token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

// Authenticate validates the bearer token and resolves the caller's identity.
// Tokens whose account no longer exists are rejected even before expiry.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		identity, err := m.authUC.ResolveIdentity(c.Request().Context(), claims)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set the identity on the context for handlers to use
		c.Set(IdentityKey, identity)

		return next(c)
	}
}

// RequireAdmin rejects callers that do not carry the admin role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := CallerIdentity(c)
		if identity == nil || !identity.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: admin role required")
		}

		return next(c)
	}
}

// CallerIdentity returns the identity set by Authenticate, or nil when the
// request never passed through it.
func CallerIdentity(c echo.Context) *entity.Identity {
	identity, _ := c.Get(IdentityKey).(*entity.Identity)

	return identity
}
