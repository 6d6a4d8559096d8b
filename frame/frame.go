// Package frame decides whether two captures of the same screen region
// visibly differ, which gates the OCR call in the capture loop.
package frame

import (
	"bytes"
	"image"

	"github.com/corona10/goimagehash"
)

// Differ compares the previous frame (nil on the first iteration) against
// the current one. Implementations are purely functional; the caller owns
// frame retention.
type Differ interface {
	Changed(prev, cur *image.RGBA) bool
}

// ExactDiffer reports a change on any single differing pixel. This
// over-triggers on sub-pixel rendering jitter; see PerceptualDiffer for
// the tolerant alternative.
type ExactDiffer struct{}

func (ExactDiffer) Changed(prev, cur *image.RGBA) bool {
	if prev == nil {
		return true
	}
	if prev.Rect != cur.Rect || prev.Stride != cur.Stride {
		return true
	}
	return !bytes.Equal(prev.Pix, cur.Pix)
}

// PerceptualDiffer compares 64-bit perception hashes and treats frames
// within Threshold hamming distance as unchanged, so anti-aliasing noise
// does not trigger OCR.
type PerceptualDiffer struct {
	// Threshold is the maximum hash distance still considered unchanged.
	Threshold int
}

func NewPerceptualDiffer(threshold int) PerceptualDiffer {
	if threshold < 0 {
		threshold = 0
	}
	return PerceptualDiffer{Threshold: threshold}
}

func (d PerceptualDiffer) Changed(prev, cur *image.RGBA) bool {
	if prev == nil {
		return true
	}
	prevHash, err := goimagehash.PerceptionHash(prev)
	if err != nil {
		return true
	}
	curHash, err := goimagehash.PerceptionHash(cur)
	if err != nil {
		return true
	}
	distance, err := prevHash.Distance(curHash)
	if err != nil {
		return true
	}
	return distance > d.Threshold
}
