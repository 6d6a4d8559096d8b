package screenshot

import (
	"image"
	"image/color"
	"testing"
)

func TestCaptureRectRejectsDegenerateBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
	}{
		{"empty", image.Rectangle{}},
		{"zero width", image.Rect(0, 0, 0, 100)},
		{"zero height", image.Rect(0, 0, 100, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CaptureRect(tt.bounds); err == nil {
				t.Errorf("CaptureRect(%v) should fail", tt.bounds)
			}
		})
	}
}

func TestGrayscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{A: 255})

	gray := Grayscale(img)
	if gray.Bounds() != img.Bounds() {
		t.Fatalf("Grayscale bounds = %v, want %v", gray.Bounds(), img.Bounds())
	}
	if white := gray.GrayAt(0, 0).Y; white != 255 {
		t.Errorf("white pixel converted to %d, want 255", white)
	}
	if black := gray.GrayAt(1, 0).Y; black != 0 {
		t.Errorf("black pixel converted to %d, want 0", black)
	}
}
