package crypto

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// EncodeQR renders data as a square QR code PNG of the given pixel size.
func EncodeQR(data string, size int) ([]byte, error) {
	png, err := qrcode.Encode(data, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
