// Package capture runs the background polling worker: rasterize the
// region, diff against the previous frame, OCR on change, accumulate text.
package capture

import (
	"context"
	"image"
	"log"
	"sync"
	"time"
	"unicode/utf8"

	"ocr-scroll/frame"
	"ocr-scroll/screenshot"
	"ocr-scroll/textlog"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	defaultOCRDeadline  = 15 * time.Second
)

// Rasterizer captures one frame of a screen rectangle.
type Rasterizer func(bounds image.Rectangle) (*image.RGBA, error)

// Grayscaler converts a frame to the single-channel image handed to OCR.
type Grayscaler func(img *image.RGBA) *image.Gray

// Recognizer extracts text from one frame. May return empty text.
type Recognizer interface {
	RecognizeWithContext(ctx context.Context, img image.Image) (string, error)
}

type Options struct {
	Bounds     image.Rectangle
	Rasterize  Rasterizer
	Grayscale  Grayscaler
	Differ     frame.Differ
	Recognizer Recognizer
	Log        *textlog.Log

	PollInterval time.Duration
	OCRDeadline  time.Duration

	// Advance, when set, is called after each changed-frame capture to
	// page the content forward.
	Advance func() error
}

// Loop is the single background capture worker. At most one worker
// goroutine runs per Loop; Stop cancels it cooperatively and joins.
type Loop struct {
	opts Options

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(opts Options) *Loop {
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	if opts.OCRDeadline <= 0 {
		opts.OCRDeadline = defaultOCRDeadline
	}
	if opts.Grayscale == nil {
		opts.Grayscale = screenshot.Grayscale
	}
	if opts.Differ == nil {
		opts.Differ = frame.ExactDiffer{}
	}
	return &Loop{opts: opts}
}

// Start launches the worker goroutine. Starting an active loop is an
// informational no-op; the return value reports whether a worker was
// actually launched.
func (l *Loop) Start() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done != nil {
		log.Printf("[CAPTURE] Already capturing, ignoring start request")
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.done = make(chan struct{})
	go l.run(ctx, l.done)
	log.Printf("[CAPTURE] Capture loop started for region %v", l.opts.Bounds)
	return true
}

// Active reports whether the worker goroutine is running.
func (l *Loop) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done != nil
}

// Stop cancels the worker and blocks until it has exited, guaranteeing no
// further log mutation after Stop returns. Stopping an idle loop is a
// no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Printf("[CAPTURE] Capture loop stopped")
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	var prev *image.RGBA
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		cur, err := l.opts.Rasterize(l.opts.Bounds)
		if err != nil {
			log.Printf("[CAPTURE] Rasterization failed, skipping frame: %v", err)
			if !l.sleep(ctx) {
				return
			}
			continue
		}

		if !l.opts.Differ.Changed(prev, cur) {
			if !l.sleep(ctx) {
				return
			}
			continue
		}

		text, err := l.recognize(ctx, cur)
		if err != nil {
			log.Printf("[CAPTURE] OCR failed, skipping frame: %v", err)
			prev = cur
			if !l.sleep(ctx) {
				return
			}
			continue
		}

		if l.opts.Log.Append(text) {
			log.Printf("[OCR] Captured chunk #%d, %d characters.", l.opts.Log.Len(), utf8.RuneCountInString(text))
		} else {
			log.Printf("[OCR] Suppressed empty or duplicate chunk")
		}

		if l.opts.Advance != nil {
			if err := l.opts.Advance(); err != nil {
				log.Printf("[CAPTURE] Page advance failed: %v", err)
			}
		}

		prev = cur
		if !l.sleep(ctx) {
			return
		}
	}
}

func (l *Loop) recognize(ctx context.Context, cur *image.RGBA) (string, error) {
	ocrCtx, cancel := context.WithTimeout(ctx, l.opts.OCRDeadline)
	defer cancel()
	return l.opts.Recognizer.RecognizeWithContext(ocrCtx, l.opts.Grayscale(cur))
}

// sleep waits one poll interval, returning false when cancelled.
func (l *Loop) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(l.opts.PollInterval):
		return true
	}
}
