// Package ocr wraps the Tesseract engine for single-block text extraction.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// DefaultPageSegMode treats the region as a single uniform block of text
// (tesseract --psm 6), which suits scrolling page content.
const DefaultPageSegMode = int(gosseract.PSM_SINGLE_BLOCK)

type Config struct {
	// Language is the tesseract language code, e.g. "eng".
	Language string
	// PageSegMode is the tesseract page segmentation mode (0-13).
	PageSegMode int
}

// Engine is a reusable Tesseract client. Recognize calls are serialized;
// the engine is owned by the single capture worker.
type Engine struct {
	mu     sync.Mutex
	client *gosseract.Client
}

func New(cfg Config) (*Engine, error) {
	client := gosseract.NewClient()
	if cfg.Language != "" {
		if err := client.SetLanguage(cfg.Language); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set OCR language %q: %v", cfg.Language, err)
		}
	}
	psm := NormalizePageSegMode(cfg.PageSegMode)
	if err := client.SetPageSegMode(gosseract.PageSegMode(psm)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode %d: %v", psm, err)
	}
	return &Engine{client: client}, nil
}

// NormalizePageSegMode clamps psm to the valid tesseract range, falling
// back to the single-block default for out-of-range values.
func NormalizePageSegMode(psm int) int {
	if psm < int(gosseract.PSM_OSD_ONLY) || psm > int(gosseract.PSM_RAW_LINE) {
		return DefaultPageSegMode
	}
	return psm
}

// Recognize extracts text from one frame. May return empty text.
func (e *Engine) Recognize(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode frame as PNG: %v", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to load frame into OCR engine: %v", err)
	}
	return e.client.Text()
}

// RecognizeWithContext runs Recognize under the context deadline. On
// timeout the underlying call is left to finish in the background and the
// context error is returned.
func (e *Engine) RecognizeWithContext(ctx context.Context, img image.Image) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		return e.Recognize(img)
	}

	resCh := make(chan struct {
		text string
		err  error
	}, 1)
	go func() {
		text, err := e.Recognize(img)
		resCh <- struct {
			text string
			err  error
		}{text, err}
	}()

	select {
	case r := <-resCh:
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close releases the underlying Tesseract client.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.client.Close()
}
