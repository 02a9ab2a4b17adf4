package qrcode

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// Generate renders content as a PNG QR code at medium error recovery.
func Generate(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qrcode: empty content")
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
