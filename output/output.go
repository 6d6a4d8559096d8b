// Package output persists the session's accumulated OCR text.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName builds the timestamped output name, e.g. "ocr_20260829_153012.txt".
func FileName(t time.Time) string {
	return fmt.Sprintf("ocr_%s.txt", t.Format("20060102_150405"))
}

// Save joins chunks with newline separators and writes them to a
// timestamped file in dir, returning the file path. Chunks are written
// untrimmed. An empty chunk list writes nothing.
func Save(dir string, chunks []string) (string, error) {
	return saveAt(dir, chunks, time.Now())
}

func saveAt(dir string, chunks []string, t time.Time) (string, error) {
	if len(chunks) == 0 {
		return "", nil
	}

	path := filepath.Join(dir, FileName(t))
	if err := os.WriteFile(path, []byte(strings.Join(chunks, "\n")), 0644); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}
	return path, nil
}

// DefaultDir returns the directory holding the running program, falling
// back to the working directory when the executable path is unknown.
func DefaultDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(execPath)
}
