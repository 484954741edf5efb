package services

import (
	"encoding/base64"
	"fmt"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// QR images are 256px with the storefront's dark slate foreground.
var (
	qrSize       = 256
	qrForeground = color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}
	qrBackground = color.White
)

// QRService renders activation payloads as scannable PNG images.
type QRService struct{}

// NewQRService creates a new QR rendering service
func NewQRService() *QRService {
	return &QRService{}
}

// DataURL encodes data into a QR code and returns it as a PNG data URL.
func (s *QRService) DataURL(data string) (string, error) {
	qr, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to build qr code: %w", err)
	}
	qr.ForegroundColor = qrForeground
	qr.BackgroundColor = qrBackground

	png, err := qr.PNG(qrSize)
	if err != nil {
		return "", fmt.Errorf("failed to render qr code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
