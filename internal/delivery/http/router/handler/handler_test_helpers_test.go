package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	custommiddleware "printdesk/internal/delivery/http/middleware"
	"printdesk/internal/delivery/http/validator"
	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEchoContext(t *testing.T, method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withUserIdentity(c echo.Context) *entity.Identity {
	user := &entity.User{
		ID:          uuid.New(),
		Name:        "Test Student",
		Email:       "student@college.edu",
		PhoneNumber: "+919876543210",
		Department:  "CSE",
	}
	identity := &entity.Identity{ID: user.ID, Role: entity.RoleUser, User: user}
	c.Set(custommiddleware.IdentityKey, identity)

	return identity
}

func sampleOrder(ownerID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		UserName:  "Test Student",
		UserEmail: "student@college.edu",
		UserPhone: "+919876543210",
		Document: entity.Document{
			Filename:  "notes.pdf",
			Key:       "doc-" + uuid.New().String() + ".pdf",
			MediaType: "application/pdf",
			Size:      2048,
		},
		NumberOfCopies: 2,
		PaperSize:      entity.PaperSizeA4,
		PrintSide:      entity.PrintSideSingle,
		PrintColor:     entity.PrintColorBlackWhite,
		Binding:        entity.BindingNone,
		Urgency:        entity.UrgencyNormal,
		Status:         entity.OrderStatusPending,
		PaymentMethod:  entity.PaymentMethodPending,
		PaymentStatus:  entity.PaymentStatusPending,
		CreatedAt:      time.Now(),
	}
}

// multipartOrderBody builds a multipart form holding an uploaded document and
// the given option fields.
func multipartOrderBody(t *testing.T, filename, mediaType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="document"; filename="`+filename+`"`)
	header.Set("Content-Type", mediaType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
