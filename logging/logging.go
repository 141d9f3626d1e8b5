package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var debugMode bool

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file, debug lines are kept and
// Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		debugMode = false
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open bubbletea log: %w", err)
	}
	// LogToFile points the stdlib logger at its own handle; keep ours.
	log.SetOutput(f)
	debugMode = true

	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// IsDebugMode reports whether debug lines are written.
func IsDebugMode() bool { return debugMode }

func Debug(v ...any) {
	if debugMode {
		log.Output(2, "DEBUG "+fmt.Sprint(v...))
	}
}

func Debugf(format string, v ...any) {
	if debugMode {
		log.Output(2, "DEBUG "+fmt.Sprintf(format, v...))
	}
}

func Infof(format string, v ...any) {
	log.Output(2, "INFO "+fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...any) {
	log.Output(2, "WARN "+fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...any) {
	log.Output(2, "ERROR "+fmt.Sprintf(format, v...))
}
