// Package qrcode renders the scannable code embedded in previews and
// exported documents. Encoding is deterministic and uses a high
// error-correction level so moderate print degradation stays scannable.
package qrcode

import (
	"encoding/base64"
	"fmt"
	"image/color"

	qr "github.com/skip2/go-qrcode"
)

// Encode renders payload as a PNG of size x size pixels with the given
// foreground/background colors.
func Encode(payload string, size int, fg, bg color.Color) ([]byte, error) {
	code, err := qr.New(payload, qr.High)
	if err != nil {
		return nil, err
	}
	code.ForegroundColor = fg
	code.BackgroundColor = bg
	return code.PNG(size)
}

// EncodeDefault renders payload in black on white.
func EncodeDefault(payload string, size int) ([]byte, error) {
	return Encode(payload, size, color.Black, color.White)
}

// ContactCard builds the vCard payload used when no custom link is set.
func ContactCard(name, phone, email, address string) string {
	return fmt.Sprintf("BEGIN:VCARD\nVERSION:3.0\nN:%s\nTEL:%s\nEMAIL:%s\nADR:%s\nEND:VCARD",
		name, phone, email, address)
}

// DataURI wraps an encoded PNG for inline embedding in HTML.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
