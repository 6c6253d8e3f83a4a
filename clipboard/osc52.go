package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/andareed/siftly-timepick/logging"
)

var (
	osc52Out    io.Writer = os.Stdout
	osc52Getenv           = os.Getenv
	osc52IsTTY            = func() bool { return isTTY(os.Stdout) }
)

func copyOSC52(text string) error {
	if !osc52Supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errors.New("clipboard unavailable (OSC52 unsupported by terminal)")
	}

	seq := osc52.New(text)
	term := osc52Getenv("TERM")
	switch {
	case osc52Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(osc52Out); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Supported() bool {
	if term := osc52Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return osc52IsTTY()
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
