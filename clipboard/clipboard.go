// Package clipboard exposes the system clipboard for the optional
// copy-on-save feature.
package clipboard

import (
	"fmt"

	"golang.design/x/clipboard"
)

var initialized bool

func Init() error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %v", err)
	}
	initialized = true
	return nil
}

func Write(text string) error {
	if !initialized {
		return fmt.Errorf("clipboard not initialized")
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
