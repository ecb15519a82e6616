package app

import (
	"errors"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

var clipboardWriteAll = clipboard.WriteAll
var clipboardWriteOSC52 = writeOSC52Clipboard

func (m *Model) copyActiveContent() {
	if m.draftID == "" {
		m.status = "no note selected"
		return
	}
	if err := copyTextToClipboard(m.content.Value()); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "content copied"
}

func copyTextToClipboard(text string) error {
	if err := clipboardWriteAll(text); err == nil {
		return nil
	}
	return clipboardWriteOSC52(text)
}

func writeOSC52Clipboard(text string) error {
	termName := strings.TrimSpace(os.Getenv("TERM"))
	if termName == "" || strings.EqualFold(termName, "dumb") {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return err
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
