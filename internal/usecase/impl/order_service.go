package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"printdesk/config"
	deliverycontext "printdesk/internal/delivery/context"
	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/domain/service"
	"printdesk/internal/usecase"
	"printdesk/internal/util"
)

const defaultMaxDocumentSize = 10 << 20 // 10 MB

// allowedMediaTypes lists the uploads the shop can actually print.
var allowedMediaTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo     repository.OrderRepository
	adminRepo     repository.AdminRepository
	documentStore service.DocumentStore
	qrService     service.QRCodeService
	maxFileSize   int64
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	AdminRepo     repository.AdminRepository
	DocumentStore service.DocumentStore
	QRService     service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	maxFileSize := int64(defaultMaxDocumentSize)
	if params.Config != nil && params.Config.Upload != nil && params.Config.Upload.MaxFileSize > 0 {
		maxFileSize = params.Config.Upload.MaxFileSize
	}

	return &orderService{
		orderRepo:     params.OrderRepo,
		adminRepo:     params.AdminRepo,
		documentStore: params.DocumentStore,
		qrService:     params.QRService,
		maxFileSize:   maxFileSize,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder validates the upload and print options, stores the document,
// and persists a new pending order. The owner's name, email and phone are
// snapshotted onto the order at this point.
func (srv *orderService) CreateOrder(ctx context.Context, caller *entity.Identity, input usecase.CreateOrderInput) (*entity.Order, error) {
	if caller.User == nil {
		return nil, domainerrors.ErrForbidden
	}

	if err := validateDocument(input.Document, srv.maxFileSize); err != nil {
		return nil, err
	}

	options, err := resolvePrintOptions(input)
	if err != nil {
		return nil, err
	}

	key := "doc-" + uuid.New().String() + sanitizeExtension(input.Document.Filename)
	if err := srv.documentStore.Save(ctx, key, input.Document.MediaType, input.Document.Content); err != nil {
		srv.log(ctx).Error("Failed to store order document", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to store document")
	}

	order := &entity.Order{
		OwnerID:   caller.User.ID,
		UserName:  caller.User.Name,
		UserEmail: caller.User.Email,
		UserPhone: caller.User.PhoneNumber,
		Document: entity.Document{
			Filename:  key,
			Key:       key,
			MediaType: input.Document.MediaType,
			Size:      input.Document.Size,
		},
		NumberOfCopies:  options.copies,
		PaperSize:       options.paperSize,
		PrintSide:       options.printSide,
		PrintColor:      options.printColor,
		Binding:         options.binding,
		Urgency:         options.urgency,
		AdditionalNotes: input.AdditionalNotes,
		Status:          entity.OrderStatusPending,
		PaymentMethod:   options.paymentMethod,
		PaymentStatus:   entity.PaymentStatusPending,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		// The document is already on disk; remove it so failed orders do
		// not leak storage. Best effort only.
		if delErr := srv.documentStore.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to clean up document after order creation failure", slog.String("key", key), slog.Any("error", delErr))
		}

		srv.log(ctx).Error("Failed to create order", slog.Any("ownerID", caller.User.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created", slog.Any("orderID", order.ID), slog.Any("ownerID", order.OwnerID))

	return order, nil
}

// ListOwnOrders returns the caller's orders, newest-first.
func (srv *orderService) ListOwnOrders(ctx context.Context, caller *entity.Identity) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByOwner(ctx, caller.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("ownerID", caller.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list own orders")
	}

	return orders, nil
}

// GetOrder returns a single order if the caller owns it or is the admin.
func (srv *orderService) GetOrder(ctx context.Context, caller *entity.Identity, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findAccessibleOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// OpenDocument streams the stored document of an order the caller may access.
func (srv *orderService) OpenDocument(ctx context.Context, caller *entity.Identity, orderID uuid.UUID) (*entity.Document, io.ReadCloser, error) {
	order, err := srv.findAccessibleOrder(ctx, caller, orderID)
	if err != nil {
		return nil, nil, err
	}

	reader, err := srv.documentStore.Open(ctx, order.Document.Key)
	if err != nil {
		srv.log(ctx).Error("Failed to open order document", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, nil, domainerrors.ErrNotFound.WrapMessage("order document is not available")
	}

	return &order.Document, reader, nil
}

// PaymentQR renders the UPI payment QR code for a completed order using the
// shop admin's UPI address. Orders that are not completed have no payable
// amount yet.
func (srv *orderService) PaymentQR(ctx context.Context, caller *entity.Identity, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.findAccessibleOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != entity.OrderStatusCompleted {
		return nil, domainerrors.ErrOrderNotCompleted
	}

	shopAdmin, err := srv.adminRepo.FindShopAdmin(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInternalError.WrapMessage("shop payment details are not configured")
		}

		return nil, errors.Wrap(err, "failed to load shop payment details")
	}

	png, err := srv.qrService.GeneratePaymentQR(service.PaymentRequest{
		PayeeUPIID: shopAdmin.UPIID,
		PayeeName:  shopAdmin.ShopName,
		Amount:     order.TotalAmount,
		Note:       fmt.Sprintf("Print order %s", shortOrderRef(order.ID)),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to render payment QR", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render payment QR")
	}

	return png, nil
}

// findAccessibleOrder loads an order and enforces the ownership rule.
func (srv *orderService) findAccessibleOrder(ctx context.Context, caller *entity.Identity, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !caller.CanAccessOrder(order) {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// resolvedOptions carries the validated print options of a new order.
type resolvedOptions struct {
	copies        int
	paperSize     entity.PaperSize
	printSide     entity.PrintSide
	printColor    entity.PrintColor
	binding       entity.Binding
	urgency       entity.Urgency
	paymentMethod entity.PaymentMethod
}

// resolvePrintOptions validates the print options of a new order. Copies,
// print side, and print color are mandatory; the remaining fields fall back
// to shop defaults when empty. Values outside the known enumerations are
// rejected.
func resolvePrintOptions(input usecase.CreateOrderInput) (*resolvedOptions, error) {
	options := &resolvedOptions{
		copies:        input.NumberOfCopies,
		paperSize:     entity.PaperSizeA4,
		binding:       entity.BindingNone,
		urgency:       entity.UrgencyNormal,
		paymentMethod: entity.PaymentMethodPending,
	}

	if options.copies < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("numberOfCopies must be at least 1")
	}

	if input.PrintSide == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("printSide is required")
	}
	options.printSide = entity.PrintSide(strings.ToLower(input.PrintSide))
	if !options.printSide.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown print side")
	}

	if input.PrintColor == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("printColor is required")
	}
	options.printColor = entity.PrintColor(strings.ToLower(input.PrintColor))
	if !options.printColor.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown print color")
	}

	if input.PaperSize != "" {
		options.paperSize = entity.PaperSize(strings.ToLower(input.PaperSize))
		if !options.paperSize.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown paper size")
		}
	}
	if input.Binding != "" {
		options.binding = entity.Binding(strings.ToLower(input.Binding))
		if !options.binding.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown binding option")
		}
	}
	if input.Urgency != "" {
		options.urgency = entity.Urgency(strings.ToLower(input.Urgency))
		if !options.urgency.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown urgency option")
		}
	}
	if input.PaymentMethod != "" {
		options.paymentMethod = entity.PaymentMethod(strings.ToLower(input.PaymentMethod))
		if !options.paymentMethod.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method")
		}
	}

	return options, nil
}

// validateDocument enforces the upload rules: the file must exist, be of a
// printable media type, and fit under the size limit.
func validateDocument(doc *usecase.DocumentUpload, maxFileSize int64) error {
	if doc == nil || doc.Content == nil {
		return domainerrors.ErrMissingDocument
	}

	if _, ok := allowedMediaTypes[strings.ToLower(doc.MediaType)]; !ok {
		return domainerrors.ErrUnsupportedFileType
	}

	if doc.Size > maxFileSize {
		return domainerrors.ErrFileTooLarge.WithDetails(
			fmt.Sprintf("document is %s, limit is %s", util.FormatBytes(doc.Size), util.FormatBytes(maxFileSize)))
	}

	return nil
}

// sanitizeExtension keeps the upload's extension for the storage key, but
// only when it looks like a plain one.
func sanitizeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}

// shortOrderRef is the human-facing order reference used in payment notes.
func shortOrderRef(id uuid.UUID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}

	return s
}
