package qrcode

import (
	"crimson/internal/domain/service"
	"crimson/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	// A deep link with a long order message can exceed what a QR code holds.
	maxContentBytes = 2048
)

// ErrContentTooLong is returned when content does not fit a QR code.
var ErrContentTooLong = errors.New("content too long for a QR code")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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
	}
}

// EncodeURL renders content as a PNG QR code.
func (s *qrcodeService) EncodeURL(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("empty QR code content")
	}
	if len(content) > maxContentBytes {
		return nil, errors.Wrapf(ErrContentTooLong, "%d bytes", len(content))
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
