package region

import (
	"errors"
	"fmt"
	"image"
	"log"
	"sync"
)

var (
	// ErrTopLeftNotSet is returned when a bottom-right corner is marked
	// before any top-left corner exists.
	ErrTopLeftNotSet = errors.New("top-left not set")

	// ErrInvalidRegion is returned when the bottom-right corner is not
	// strictly below and to the right of the top-left corner.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrNotReady is returned by Bounds before a valid corner pair exists.
	ErrNotReady = errors.New("region not ready")
)

// Point is an integer screen coordinate. Immutable once recorded.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Selector tracks the two user-marked corners and resolves them into a
// capture rectangle. Safe for concurrent use: hotkey callbacks mark
// corners while the session controller reads the resolved bounds.
type Selector struct {
	mu      sync.Mutex
	topLeft *Point
	bounds  image.Rectangle
	ready   bool
}

func NewSelector() *Selector {
	return &Selector{}
}

// MarkTopLeft records the top-left corner, overwriting any prior value.
// Marking a new top-left invalidates the resolved region until a matching
// bottom-right is marked again.
func (s *Selector) MarkTopLeft(p Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topLeft = &p
	s.ready = false
	log.Printf("[REGION] Top-left corner set to %s", p)
}

// MarkBottomRight records the bottom-right corner and validates the pair.
// The corner must be strictly lower-right of the current top-left. On any
// failure the previously resolved region, if one exists, is left intact.
func (s *Selector) MarkBottomRight(p Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.topLeft == nil {
		return ErrTopLeftNotSet
	}
	tl := *s.topLeft
	if p.X <= tl.X || p.Y <= tl.Y {
		return fmt.Errorf("%w: bottom-right %s must be lower-right of top-left %s", ErrInvalidRegion, p, tl)
	}

	s.bounds = image.Rect(tl.X, tl.Y, p.X, p.Y)
	s.ready = true
	log.Printf("[REGION] Bottom-right corner set to %s", p)
	return nil
}

// Ready reports whether a geometrically valid corner pair exists.
func (s *Selector) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Bounds returns the resolved capture rectangle.
func (s *Selector) Bounds() (image.Rectangle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return image.Rectangle{}, ErrNotReady
	}
	return s.bounds, nil
}
