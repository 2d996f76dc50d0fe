package qrcode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"furnishop/config"
	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	orderQRType = "order"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type    string  `json:"type"`
	OrderID int64   `json:"order_id"`
	Total   float64 `json:"total"`
	URL     string  `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewQRCodeServiceFromConfig reads the qrcode section, using defaults when it is absent.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateOrderQR generates a confirmation QR code for a placed order
func (s *qrcodeService) GenerateOrderQR(order *entity.Order) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("order is required")
	}

	data := QRCodeData{
		Type:    orderQRType,
		OrderID: order.ID,
		Total:   order.Total,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + strconv.FormatInt(order.ID, 10)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderQR parses QR code data and returns the order ID
func (s *qrcodeService) ParseOrderQR(qrData string) (int64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != orderQRType {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderID <= 0 {
		return 0, fmt.Errorf("invalid order ID: %d", data.OrderID)
	}

	return data.OrderID, nil
}
