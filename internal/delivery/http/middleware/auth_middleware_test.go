package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/service"
	mockservice "printdesk/internal/mocks/service"
	mockusecase "printdesk/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/my-orders", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	authUC := mockusecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(tokenSvc, authUC)

	claims := &service.Claims{SubjectID: uuid.New(), Role: entity.RoleUser}
	identity := &entity.Identity{
		ID:   claims.SubjectID,
		Role: entity.RoleUser,
		User: &entity.User{ID: claims.SubjectID, Email: "student@college.edu"},
	}

	tokenSvc.EXPECT().ValidateToken("valid-token").Return(claims, nil)
	authUC.EXPECT().ResolveIdentity(mock.Anything, claims).Return(identity, nil)

	c, rec := newAuthTestContext(t, "Bearer valid-token")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, identity, CallerIdentity(c))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	authUC := mockusecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(tokenSvc, authUC)

	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	authUC := mockusecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(tokenSvc, authUC)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	authUC := mockusecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(tokenSvc, authUC)

	tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, domainerrors.ErrInvalidToken)

	c, rec := newAuthTestContext(t, "Bearer garbage")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_DeletedAccount(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	authUC := mockusecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(tokenSvc, authUC)

	claims := &service.Claims{SubjectID: uuid.New(), Role: entity.RoleUser}
	tokenSvc.EXPECT().ValidateToken("orphan-token").Return(claims, nil)
	authUC.EXPECT().ResolveIdentity(mock.Anything, claims).Return(nil, domainerrors.ErrInvalidToken)

	c, rec := newAuthTestContext(t, "Bearer orphan-token")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	authUC := mockusecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(tokenSvc, authUC)

	t.Run("admin passes", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(IdentityKey, &entity.Identity{ID: uuid.New(), Role: entity.RoleAdmin, Admin: &entity.Admin{}})

		err := m.RequireAdmin(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user rejected", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(IdentityKey, &entity.Identity{ID: uuid.New(), Role: entity.RoleUser, User: &entity.User{}})

		err := m.RequireAdmin(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated rejected", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")

		err := m.RequireAdmin(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
