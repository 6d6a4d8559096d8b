// Package session coordinates the hotkey commands: corner marking,
// capture start, and the stop-and-save shutdown.
package session

import (
	"errors"
	"image"
	"log"
	"sync"

	"ocr-scroll/region"
	"ocr-scroll/textlog"
)

// State tracks the session through its lifecycle. Capturing persists
// until Stopped; Stopped is terminal.
type State int

const (
	Idle State = iota
	TopLeftSet
	RegionReady
	Capturing
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case TopLeftSet:
		return "top-left-set"
	case RegionReady:
		return "region-ready"
	case Capturing:
		return "capturing"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Runner is the capture loop seen by the controller.
type Runner interface {
	Start() bool
	Stop()
}

type Options struct {
	Selector *region.Selector
	Log      *textlog.Log

	// NewRunner builds the capture loop for the resolved region, invoked
	// once when capture starts.
	NewRunner func(bounds image.Rectangle) Runner

	// CursorPos reads the current mouse location for corner marks.
	CursorPos func() (int, int)

	// SaveText persists the accumulated chunks, returning the file path.
	SaveText func(chunks []string) (string, error)

	// CopyText, when set, receives the joined text after a successful save.
	CopyText func(text string) error
}

// Controller is the session state machine. Command methods are invoked
// from the hotkey listener goroutine; the capture worker never calls back
// into the controller.
type Controller struct {
	opts Options

	mu     sync.Mutex
	state  State
	runner Runner

	done     chan struct{}
	stopOnce sync.Once
}

func New(opts Options) *Controller {
	return &Controller{
		opts: opts,
		done: make(chan struct{}),
	}
}

// State returns the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done is closed once the session has stopped and the log is flushed.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// MarkTopLeft records the cursor position as the region's top-left corner.
func (c *Controller) MarkTopLeft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Stopped {
		return
	}

	x, y := c.opts.CursorPos()
	c.opts.Selector.MarkTopLeft(region.Point{X: x, Y: y})
	if c.state != Capturing {
		c.state = TopLeftSet
	}
}

// MarkBottomRight records the cursor position as the bottom-right corner
// and validates the region. Failures are reported and leave state intact.
func (c *Controller) MarkBottomRight() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Stopped {
		return
	}

	x, y := c.opts.CursorPos()
	err := c.opts.Selector.MarkBottomRight(region.Point{X: x, Y: y})
	switch {
	case errors.Is(err, region.ErrTopLeftNotSet):
		log.Printf("[ERROR] Please set top-left first")
		return
	case err != nil:
		log.Printf("[ERROR] %v. Try again.", err)
		return
	}
	if c.state != Capturing {
		c.state = RegionReady
		log.Printf("[REGION] Region marked. Start capture or stop to save.")
	}
}

// StartCapture launches the capture loop for the marked region. A start
// while already capturing is an informational no-op; a start before the
// region is ready is reported and ignored.
func (c *Controller) StartCapture() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Stopped {
		return
	}
	if c.state == Capturing {
		log.Printf("[CAPTURE] Already capturing")
		return
	}

	bounds, err := c.opts.Selector.Bounds()
	if err != nil {
		log.Printf("[ERROR] Region not ready. Mark both corners first.")
		return
	}

	c.runner = c.opts.NewRunner(bounds)
	c.runner.Start()
	c.state = Capturing
}

// Stop cancels the capture loop, waits for it to exit, flushes the text
// log, and marks the session stopped. Valid in any state; idempotent.
func (c *Controller) Stop() {
	c.stopOnce.Do(c.stop)
}

func (c *Controller) stop() {
	c.mu.Lock()
	runner := c.runner
	c.runner = nil
	c.state = Stopped
	c.mu.Unlock()

	if runner != nil {
		runner.Stop()
	}

	// The worker has joined; the log is stable from here on.
	if c.opts.Log.Len() == 0 {
		log.Printf("[STOP] No text captured. Exiting.")
		close(c.done)
		return
	}

	path, err := c.opts.SaveText(c.opts.Log.Chunks())
	if err != nil {
		log.Printf("[ERROR] Failed to save file: %v", err)
	} else {
		log.Printf("[SAVE] OCR text written to: %s", path)
	}

	if c.opts.CopyText != nil {
		if err := c.opts.CopyText(c.opts.Log.Join()); err != nil {
			log.Printf("[ERROR] Failed to copy text to clipboard: %v", err)
		}
	}

	close(c.done)
}
