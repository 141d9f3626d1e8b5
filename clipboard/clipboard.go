// Package clipboard copies text to the system clipboard, falling back to
// the OSC52 terminal escape when no clipboard utility is available.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-sheetchart/logging"
)

// Copy writes text to the clipboard.
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Debugf("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
