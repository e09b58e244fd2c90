package handler

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	mockusecase "printdesk/internal/mocks/usecase"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Create_Success(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	body, contentType := multipartOrderBody(t, "notes.pdf", "application/pdf", []byte("%PDF-1.4 content"), map[string]string{
		"numberOfCopies": "3",
		"paperSize":      "a3",
		"printColor":     "color",
	})
	c, rec := newEchoContext(t, http.MethodPost, "/api/orders", body, contentType)
	identity := withUserIdentity(c)

	created := sampleOrder(identity.ID)
	var input usecase.CreateOrderInput
	uc.EXPECT().
		CreateOrder(mock.Anything, identity, mock.Anything).
		Run(func(_ context.Context, _ *entity.Identity, captured usecase.CreateOrderInput) {
			input = captured
		}).
		Return(created, nil)

	err := handler.Create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())

	// The captured input must carry the upload and the raw option fields.
	require.NotNil(t, input.Document)
	assert.Equal(t, "notes.pdf", input.Document.Filename)
	assert.Equal(t, "application/pdf", input.Document.MediaType)
	assert.Equal(t, 3, input.NumberOfCopies)
	assert.Equal(t, "a3", input.PaperSize)
	assert.Equal(t, "color", input.PrintColor)
}

func TestOrderHandler_Create_AbsentCopiesDefaultsToOne(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	body, contentType := multipartOrderBody(t, "notes.pdf", "application/pdf", []byte("%PDF-1.4 content"), map[string]string{
		"printSide":  "single",
		"printColor": "blackwhite",
	})
	c, _ := newEchoContext(t, http.MethodPost, "/api/orders", body, contentType)
	identity := withUserIdentity(c)

	var input usecase.CreateOrderInput
	uc.EXPECT().
		CreateOrder(mock.Anything, identity, mock.Anything).
		Run(func(_ context.Context, _ *entity.Identity, captured usecase.CreateOrderInput) {
			input = captured
		}).
		Return(sampleOrder(identity.ID), nil)

	err := handler.Create(c)
	require.NoError(t, err)
	assert.Equal(t, 1, input.NumberOfCopies)
}

func TestOrderHandler_Create_ExplicitZeroCopiesPassedThrough(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	body, contentType := multipartOrderBody(t, "notes.pdf", "application/pdf", []byte("%PDF-1.4 content"), map[string]string{
		"numberOfCopies": "0",
		"printSide":      "single",
		"printColor":     "blackwhite",
	})
	c, _ := newEchoContext(t, http.MethodPost, "/api/orders", body, contentType)
	identity := withUserIdentity(c)

	uc.EXPECT().
		CreateOrder(mock.Anything, identity, mock.MatchedBy(func(in usecase.CreateOrderInput) bool {
			return in.NumberOfCopies == 0
		})).
		Return(nil, domainerrors.ErrValidationFailed)

	err := handler.Create(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderHandler_Create_MissingDocument(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	c, _ := newEchoContext(t, http.MethodPost, "/api/orders", strings.NewReader(""), echo.MIMEMultipartForm+"; boundary=xxx")
	withUserIdentity(c)

	err := handler.Create(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingDocument)
}

func TestOrderHandler_Create_NonNumericCopies(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	body, contentType := multipartOrderBody(t, "notes.pdf", "application/pdf", []byte("content"), map[string]string{
		"numberOfCopies": "two",
	})
	c, rec := newEchoContext(t, http.MethodPost, "/api/orders", body, contentType)
	withUserIdentity(c)

	err := handler.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestOrderHandler_ListOwn(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/orders/my-orders", nil, "")
	identity := withUserIdentity(c)

	first := sampleOrder(identity.ID)
	second := sampleOrder(identity.ID)
	uc.EXPECT().
		ListOwnOrders(mock.Anything, identity).
		Return([]*entity.Order{first, second}, nil)

	err := handler.ListOwn(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), first.ID.String())
	assert.Contains(t, rec.Body.String(), second.ID.String())
}

func TestOrderHandler_Get_InvalidID(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	c, _ := newEchoContext(t, http.MethodGet, "/api/orders/not-a-uuid", nil, "")
	withUserIdentity(c)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Get(c)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderHandler_Get_Success(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/orders/x", nil, "")
	identity := withUserIdentity(c)

	order := sampleOrder(identity.ID)
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())

	uc.EXPECT().
		GetOrder(mock.Anything, identity, order.ID).
		Return(order, nil)

	err := handler.Get(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), order.ID.String())
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestOrderHandler_Document_StreamsContent(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/orders/x/document", nil, "")
	identity := withUserIdentity(c)

	order := sampleOrder(identity.ID)
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())

	uc.EXPECT().
		OpenDocument(mock.Anything, identity, order.ID).
		Return(&order.Document, io.NopCloser(strings.NewReader("%PDF-1.4 content")), nil)

	err := handler.Document(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF-1.4 content", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/pdf")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "notes.pdf")
}

func TestOrderHandler_PaymentQR_NotCompleted(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	c, _ := newEchoContext(t, http.MethodGet, "/api/orders/x/payment-qr", nil, "")
	identity := withUserIdentity(c)

	orderID := uuid.New()
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	uc.EXPECT().
		PaymentQR(mock.Anything, identity, orderID).
		Return(nil, domainerrors.ErrOrderNotCompleted)

	err := handler.PaymentQR(c)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCompleted)
}

func TestOrderHandler_PaymentQR_Success(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/orders/x/payment-qr", nil, "")
	identity := withUserIdentity(c)

	orderID := uuid.New()
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	uc.EXPECT().
		PaymentQR(mock.Anything, identity, orderID).
		Return(png, nil)

	err := handler.PaymentQR(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
