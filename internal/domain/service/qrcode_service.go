package service

// PaymentRequest carries everything needed to render a UPI payment QR code
// for a completed order.
type PaymentRequest struct {
	PayeeUPIID string  // The shop's UPI address, e.g. "xeroxshop@upi".
	PayeeName  string  // The shop's display name.
	Amount     float64 // The order's total amount in rupees.
	Note       string  // Transaction note shown in the payer's UPI app.
}

// QRCodeService generates QR code images for payment requests.
type QRCodeService interface {
	// GeneratePaymentQR renders a PNG QR code encoding the UPI payment URI
	// for the given request.
	GeneratePaymentQR(req PaymentRequest) ([]byte, error)
}
