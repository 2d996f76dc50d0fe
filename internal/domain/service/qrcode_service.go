package service

import "furnishop/internal/domain/entity"

// QRCodeService defines the interface for order confirmation QR codes
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code identifying the order
	GenerateOrderQR(order *entity.Order) ([]byte, error)

	// ParseOrderQR parses scanned QR code data and returns the order ID
	ParseOrderQR(qrData string) (int64, error)
}
