package screenshot

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/kbinani/screenshot"
)

// CaptureRect rasterizes the given screen rectangle into an RGBA frame.
func CaptureRect(bounds image.Rectangle) (*image.RGBA, error) {
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("invalid region dimensions: width=%d, height=%d", bounds.Dx(), bounds.Dy())
	}

	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to capture region: %v", err)
	}
	return img, nil
}

// Grayscale converts a captured frame to a single-channel image for OCR.
func Grayscale(img *image.RGBA) *image.Gray {
	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	return gray
}

// PrimaryDisplayBounds returns the bounds of the primary display.
func PrimaryDisplayBounds() (image.Rectangle, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return image.Rectangle{}, fmt.Errorf("no active displays found")
	}
	return screenshot.GetDisplayBounds(0), nil
}
