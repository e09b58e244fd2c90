package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/domain/service"
	mockRepo "printdesk/internal/mocks/repository"
	mockSvc "printdesk/internal/mocks/service"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service       usecase.OrderUsecase
	orderRepo     *mockRepo.MockOrderRepository
	adminRepo     *mockRepo.MockAdminRepository
	documentStore *mockSvc.MockDocumentStore
	qrService     *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	documentStore := mockSvc.NewMockDocumentStore(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	svc := NewOrderService(OrderServiceParams{
		OrderRepo:     orderRepo,
		AdminRepo:     adminRepo,
		DocumentStore: documentStore,
		QRService:     qrService,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:       svc,
		orderRepo:     orderRepo,
		adminRepo:     adminRepo,
		documentStore: documentStore,
		qrService:     qrService,
	}
}

func pdfUpload(size int64) *usecase.DocumentUpload {
	return &usecase.DocumentUpload{
		Filename:  "assignment.pdf",
		MediaType: "application/pdf",
		Size:      size,
		Content:   strings.NewReader("%PDF-1.4 pretend document"),
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser()
	caller := newUserIdentity(user)

	fx.documentStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return(nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, caller, usecase.CreateOrderInput{
		Document:       pdfUpload(2048),
		NumberOfCopies: 3,
		PaperSize:      "A4",
		PrintSide:      "double",
		PrintColor:     "color",
		Binding:        "spiral",
		Urgency:        "urgent",
		PaymentMethod:  "cash",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, user.ID, order.OwnerID)
	// Owner contact details are snapshotted onto the order.
	assert.Equal(t, user.Name, order.UserName)
	assert.Equal(t, user.Email, order.UserEmail)
	assert.Equal(t, user.PhoneNumber, order.UserPhone)
	assert.Equal(t, 3, order.NumberOfCopies)
	assert.Equal(t, entity.PaperSizeA4, order.PaperSize)
	assert.Equal(t, entity.PrintSideDouble, order.PrintSide)
	assert.Equal(t, entity.PrintColorColor, order.PrintColor)
	assert.Equal(t, entity.BindingSpiral, order.Binding)
	assert.Equal(t, entity.UrgencyUrgent, order.Urgency)
	assert.Equal(t, entity.PaymentMethodCash, order.PaymentMethod)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.True(t, strings.HasPrefix(order.Document.Key, "doc-"))
	assert.True(t, strings.HasSuffix(order.Document.Key, ".pdf"))
}

func TestOrderService_CreateOrder_DefaultsApplied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := newUserIdentity(newTestUser())

	fx.documentStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return(nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, caller, usecase.CreateOrderInput{
		Document: &usecase.DocumentUpload{
			Filename:  "notes.png",
			MediaType: "image/png",
			Size:      1024,
			Content:   strings.NewReader("png bytes"),
		},
		NumberOfCopies: 1,
		PrintSide:      "single",
		PrintColor:     "blackwhite",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, order.NumberOfCopies)
	assert.Equal(t, entity.PaperSizeA4, order.PaperSize)
	assert.Equal(t, entity.PrintSideSingle, order.PrintSide)
	assert.Equal(t, entity.PrintColorBlackWhite, order.PrintColor)
	assert.Equal(t, entity.BindingNone, order.Binding)
	assert.Equal(t, entity.UrgencyNormal, order.Urgency)
	assert.Equal(t, entity.PaymentMethodPending, order.PaymentMethod)
}

func TestOrderService_CreateOrder_ZeroCopiesRejected(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), newUserIdentity(newTestUser()), usecase.CreateOrderInput{
		Document: &usecase.DocumentUpload{
			Filename:  "notes.pdf",
			MediaType: "application/pdf",
			Size:      1024,
			Content:   strings.NewReader("pdf bytes"),
		},
		NumberOfCopies: 0,
		PrintSide:      "single",
		PrintColor:     "blackwhite",
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_MissingRequiredOptions(t *testing.T) {
	tests := []struct {
		name       string
		printSide  string
		printColor string
	}{
		{name: "missing print side", printSide: "", printColor: "blackwhite"},
		{name: "missing print color", printSide: "single", printColor: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			order, err := fx.service.CreateOrder(context.Background(), newUserIdentity(newTestUser()), usecase.CreateOrderInput{
				Document: &usecase.DocumentUpload{
					Filename:  "notes.pdf",
					MediaType: "application/pdf",
					Size:      1024,
					Content:   strings.NewReader("pdf bytes"),
				},
				NumberOfCopies: 1,
				PrintSide:      tt.printSide,
				PrintColor:     tt.printColor,
			})

			require.Error(t, err)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOrderService_CreateOrder_MissingDocument(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), newUserIdentity(newTestUser()), usecase.CreateOrderInput{})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrMissingDocument)
}

func TestOrderService_CreateOrder_UnsupportedFileType(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), newUserIdentity(newTestUser()), usecase.CreateOrderInput{
		Document: &usecase.DocumentUpload{
			Filename:  "report.docx",
			MediaType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Size:      1024,
			Content:   strings.NewReader("docx bytes"),
		},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestOrderService_CreateOrder_FileTooLarge(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), newUserIdentity(newTestUser()), usecase.CreateOrderInput{
		Document: pdfUpload(11 << 20),
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestOrderService_CreateOrder_InvalidOption(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), newUserIdentity(newTestUser()), usecase.CreateOrderInput{
		Document:       pdfUpload(2048),
		NumberOfCopies: 1,
		PrintSide:      "single",
		PrintColor:     "blackwhite",
		PaperSize:      "a5",
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_CleansUpDocumentOnFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := newUserIdentity(newTestUser())
	dbErr := errors.New("insert failed")

	var savedKey string
	fx.documentStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Run(func(ctx context.Context, key string, mediaType string, content io.Reader) {
			savedKey = key
		}).
		Return(nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(dbErr)

	fx.documentStore.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, key string) {
			assert.Equal(t, savedKey, key)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, caller, usecase.CreateOrderInput{
		Document:       pdfUpload(2048),
		NumberOfCopies: 1,
		PrintSide:      "single",
		PrintColor:     "blackwhite",
	})

	require.Error(t, err)
	assert.Nil(t, order)
}

func TestOrderService_ListOwnOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser()
	caller := newUserIdentity(user)
	orders := []*entity.Order{newPendingOrder(user.ID), newPendingOrder(user.ID)}

	fx.orderRepo.EXPECT().ListByOwner(ctx, user.ID).Return(orders, nil)

	got, err := fx.service.ListOwnOrders(ctx, caller)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOrderService_GetOrder_OwnerAndAdminAllowed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser()
	order := newPendingOrder(user.ID)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil).Twice()

	got, err := fx.service.GetOrder(ctx, newUserIdentity(user), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	got, err = fx.service.GetOrder(ctx, newAdminIdentity(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderService_GetOrder_OtherUserForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newPendingOrder(uuid.New())
	stranger := newUserIdentity(newTestUser())

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, stranger, order.ID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	got, err := fx.service.GetOrder(ctx, newAdminIdentity(), orderID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_OpenDocument(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser()
	order := newPendingOrder(user.ID)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.documentStore.EXPECT().
		Open(ctx, order.Document.Key).
		Return(io.NopCloser(strings.NewReader("content")), nil)

	doc, reader, err := fx.service.OpenDocument(ctx, newUserIdentity(user), order.ID)

	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, order.Document.Key, doc.Key)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestOrderService_PaymentQR_RequiresCompletedOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser()
	order := newPendingOrder(user.ID)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	png, err := fx.service.PaymentQR(ctx, newUserIdentity(user), order.ID)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCompleted)
}

func TestOrderService_PaymentQR_Completed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser()
	order := newPendingOrder(user.ID)
	order.Status = entity.OrderStatusCompleted
	order.TotalAmount = 150

	shopAdmin := &entity.Admin{
		ID:       uuid.New(),
		Username: "admin",
		ShopName: "College Xerox Shop",
		UPIID:    "xeroxshop@upi",
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.adminRepo.EXPECT().FindShopAdmin(ctx).Return(shopAdmin, nil)
	fx.qrService.EXPECT().
		GeneratePaymentQR(mock.AnythingOfType("service.PaymentRequest")).
		Run(func(req service.PaymentRequest) {
			assert.Equal(t, "xeroxshop@upi", req.PayeeUPIID)
			assert.Equal(t, "College Xerox Shop", req.PayeeName)
			assert.Equal(t, float64(150), req.Amount)
		}).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.PaymentQR(ctx, newUserIdentity(user), order.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
