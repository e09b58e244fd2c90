package qrcode

import (
	"testing"

	"printdesk/config"
	"printdesk/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qrConfig(size int, level string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
		},
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back to default", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(qrConfig(tt.size, tt.errorCorrectionLevel))
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	svc := NewQRCodeService(qrConfig(256, "M"))

	qrBytes, err := svc.GeneratePaymentQR(service.PaymentRequest{
		PayeeUPIID: "xeroxshop@upi",
		PayeeName:  "College Xerox Shop",
		Amount:     150,
		Note:       "Order payment",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePaymentQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(qrConfig(tt.size, "M"))

			qrBytes, err := svc.GeneratePaymentQR(service.PaymentRequest{
				PayeeUPIID: "xeroxshop@upi",
				PayeeName:  "College Xerox Shop",
				Amount:     42.5,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestBuildUPIURI(t *testing.T) {
	uri := buildUPIURI(service.PaymentRequest{
		PayeeUPIID: "xeroxshop@upi",
		PayeeName:  "College Xerox Shop",
		Amount:     150,
		Note:       "Order #42",
	})

	assert.Contains(t, uri, "upi://pay?")
	assert.Contains(t, uri, "pa=xeroxshop%40upi")
	assert.Contains(t, uri, "am=150.00")
	assert.Contains(t, uri, "cu=INR")
	assert.Contains(t, uri, "tn=Order+%2342")
}

func TestBuildUPIURI_OmitsEmptyNote(t *testing.T) {
	uri := buildUPIURI(service.PaymentRequest{
		PayeeUPIID: "xeroxshop@upi",
		PayeeName:  "College Xerox Shop",
		Amount:     10,
	})

	assert.NotContains(t, uri, "tn=")
}
