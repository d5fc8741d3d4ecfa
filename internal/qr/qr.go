// Package qr renders entry-pass QR codes as PNG images. The encoded value
// is the deterministic pass URL computed by the content resolver; error
// correction is fixed at the highest tier so the code survives decorative
// overlays and print wear.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// DefaultSize is the PNG edge length in pixels when the caller does
	// not specify one.
	DefaultSize = 256

	// MaxSize caps requested sizes to keep encoding cheap.
	MaxSize = 1024
)

// PNG encodes value into a size×size PNG. Sizes outside [64, MaxSize]
// are clamped.
func PNG(value string, size int) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("qr: empty value")
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size < 64 {
		size = 64
	}
	if size > MaxSize {
		size = MaxSize
	}

	png, err := qrcode.Encode(value, qrcode.Highest, size)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return png, nil
}
