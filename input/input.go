// Package input reads the cursor position and synthesizes key presses.
package input

import (
	"fmt"
	"strings"

	"github.com/go-vgo/robotgo"
)

// CursorPosition returns the current mouse location in screen coordinates.
func CursorPosition() (int, int) {
	return robotgo.Location()
}

// Tap presses and releases a single key, e.g. "pagedown". Used to page
// through content between captures.
func Tap(key string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil
	}
	if err := robotgo.KeyTap(key); err != nil {
		return fmt.Errorf("failed to send %q key: %v", key, err)
	}
	return nil
}
