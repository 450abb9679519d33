// Package service declares interfaces for infrastructure-backed services
// consumed by the use case layer.
package service

// QRCodeService generates QR codes for order confirmations.
type QRCodeService interface {
	// GenerateOrderQR renders the order number as a PNG QR code for the
	// order confirmation view.
	GenerateOrderQR(orderNumber string) ([]byte, error)
}
