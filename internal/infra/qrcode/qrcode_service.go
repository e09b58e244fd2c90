// Package qrcode renders UPI payment QR codes for completed orders.
package qrcode

import (
	"fmt"
	"net/url"
	"strconv"

	"printdesk/config"
	"printdesk/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
	}
}

// GeneratePaymentQR renders a PNG QR code encoding the UPI payment URI for the
// given request. Scanning it in any UPI app pre-fills the payee and amount.
func (s *qrcodeService) GeneratePaymentQR(req service.PaymentRequest) ([]byte, error) {
	uri := buildUPIURI(req)

	qrCode, err := qrcode.New(uri, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// buildUPIURI assembles a upi://pay deep link per the NPCI linking spec.
func buildUPIURI(req service.PaymentRequest) string {
	q := url.Values{}
	q.Set("pa", req.PayeeUPIID)
	q.Set("pn", req.PayeeName)
	q.Set("am", strconv.FormatFloat(req.Amount, 'f', 2, 64))
	q.Set("cu", "INR")
	if req.Note != "" {
		q.Set("tn", req.Note)
	}
	return "upi://pay?" + q.Encode()
}

func parseRecoveryLevel(errorCorrectionLevel string) qrcode.RecoveryLevel {
	switch errorCorrectionLevel {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
