package triplog

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/lvillar/triplog/layout"
)

// qrPixels is the raster resolution of the encoded QR code. The draw size
// on the page is configured separately.
const qrPixels = 256

// drawTripQR renders a QR code linking to the trip's web page, centered
// below the cover photo.
func drawTripQR(eng *layout.Engine, url string, size float64) error {
	code, err := qr.Encode(url, qr.M, qr.Auto)
	if err != nil {
		return fmt.Errorf("encoding trip QR: %w", err)
	}
	scaled, err := barcode.Scale(code, qrPixels, qrPixels)
	if err != nil {
		return fmt.Errorf("scaling trip QR: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return fmt.Errorf("rasterizing trip QR: %w", err)
	}
	return eng.PlaceReaderImage("trip-qr", &buf, size, size, true)
}
