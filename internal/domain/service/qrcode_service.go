package service

// QRCodeService renders QR codes.
type QRCodeService interface {
	// EncodeURL renders content (normally a URL) as a PNG image.
	EncodeURL(content string) ([]byte, error)
}
