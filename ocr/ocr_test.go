package ocr

import "testing"

func TestNormalizePageSegMode(t *testing.T) {
	tests := []struct {
		psm  int
		want int
	}{
		{6, 6},
		{0, 0},
		{13, 13},
		{3, 3},
		{-1, DefaultPageSegMode},
		{14, DefaultPageSegMode},
		{100, DefaultPageSegMode},
	}
	for _, tt := range tests {
		if got := NormalizePageSegMode(tt.psm); got != tt.want {
			t.Errorf("NormalizePageSegMode(%d) = %d, want %d", tt.psm, got, tt.want)
		}
	}
}
