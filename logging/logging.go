package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}

	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// calldepth skips logf and the exported helper so Lshortfile points at the caller.
const calldepth = 3

func logf(level, format string, args ...any) {
	_ = log.Output(calldepth, level+" "+fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...any) { logf("DEBUG", format, args...) }
func Infof(format string, args ...any)  { logf("INFO", format, args...) }
func Warnf(format string, args ...any)  { logf("WARN", format, args...) }
func Errorf(format string, args ...any) { logf("ERROR", format, args...) }
