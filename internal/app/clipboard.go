package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

var clipboardWriteAll = clipboard.WriteAll
var clipboardWriteOSC52 = writeOSC52Clipboard

// copyTextToClipboard tries the system clipboard first, then falls back to
// an OSC52 escape so copy still works over SSH.
func copyTextToClipboard(text string) error {
	sysErr := clipboardWriteAll(text)
	if sysErr == nil {
		return nil
	}
	if oscErr := clipboardWriteOSC52(text); oscErr == nil {
		return nil
	} else {
		return fmt.Errorf("system clipboard failed: %v; OSC52 fallback failed: %v", sysErr, oscErr)
	}
}

func writeOSC52Clipboard(text string) error {
	termName := strings.TrimSpace(os.Getenv("TERM"))
	if termName == "" || strings.EqualFold(termName, "dumb") {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if strings.HasPrefix(strings.ToLower(termName), "screen") {
		seq = seq.Screen()
	}
	_, err = seq.WriteTo(tty)
	return err
}
