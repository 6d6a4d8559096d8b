// Package textlog accumulates OCR text chunks for one capture session.
package textlog

import (
	"strings"
	"sync"
)

// Log is an append-only sequence of text chunks. Chunks that trim to the
// empty string, or that trim-equal the most recently appended chunk, are
// suppressed; accepted chunks are stored verbatim.
type Log struct {
	mu     sync.Mutex
	chunks []string
}

func New() *Log {
	return &Log{}
}

// Append records text as a new chunk and reports whether it was accepted.
func (l *Log) Append(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if n := len(l.chunks); n > 0 && strings.TrimSpace(l.chunks[n-1]) == trimmed {
		return false
	}
	l.chunks = append(l.chunks, text)
	return true
}

// Len returns the number of accepted chunks.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.chunks)
}

// Chunks returns a copy of the accepted chunks in append order.
func (l *Log) Chunks() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.chunks))
	copy(out, l.chunks)
	return out
}

// Join concatenates all chunks with newline separators. Chunks are not
// trimmed before joining.
func (l *Log) Join() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.chunks, "\n")
}
