// Package clipboard copies picker values to the system clipboard, falling
// back to an OSC52 escape sequence when no clipboard utility is installed.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-timepick/logging"
)

// Method says how a copy reached the clipboard.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

var (
	systemCopy        = clipboard.WriteAll
	systemUnsupported = func() bool { return clipboard.Unsupported }
)

// ErrEmpty is returned when there is nothing to copy.
var ErrEmpty = errors.New("clipboard: nothing to copy")

// Copy puts text on the clipboard and reports which path it took.
func Copy(text string) (Method, error) {
	if text == "" {
		return "", ErrEmpty
	}
	if !systemUnsupported() {
		err := systemCopy(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return MethodSystem, nil
		}
		logging.Warnf("Clipboard: system copy failed, trying OSC52: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	return MethodOSC52, nil
}
