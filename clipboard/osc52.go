package clipboard

import (
	"encoding/base64"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/andareed/siftly-sheetchart/logging"
)

var errOSC52Unsupported = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")

func copyOSC52(text string) error {
	if !osc52Supported(os.Getenv("TERM"), term.IsTerminal(int(os.Stdout.Fd()))) {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errOSC52Unsupported
	}
	if err := writeOSC52(os.Stdout, text); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func writeOSC52(w io.Writer, text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := io.WriteString(w, "\x1b]52;c;"+encoded+"\x07")
	return err
}

func osc52Supported(termName string, tty bool) bool {
	if termName == "" || strings.EqualFold(termName, "dumb") {
		return false
	}
	return tty
}
