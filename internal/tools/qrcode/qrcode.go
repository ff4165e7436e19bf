// Package qrcode renders text as a PNG QR code embedded in a data URL.
package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

// Size is the edge length of the generated image in pixels.
const Size = 256

const dataURLPrefix = "data:image/png;base64,"

var ErrTextRequired = errors.New("text is required")

// Generate encodes text as a QR code and returns it as a PNG data URL.
func Generate(text string) (string, error) {
	if text == "" {
		return "", ErrTextRequired
	}

	png, err := goqrcode.Encode(text, goqrcode.Medium, Size)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}

	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}
