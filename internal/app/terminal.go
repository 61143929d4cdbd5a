package app

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/linepick/internal/logging/events"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const ttyPath = "/dev/tty"

// terminal is where the picker reads keys and draws. Candidates arrive on
// stdin and the result leaves on stdout, so when either is redirected the UI
// moves to the controlling terminal instead.
type terminal struct {
	input  io.Reader
	output io.Writer
	tty    *os.File
}

func openTerminal(stdin, stdout *os.File) (*terminal, error) {
	inTTY := isatty.IsTerminal(stdin.Fd())
	outTTY := isatty.IsTerminal(stdout.Fd())
	t := &terminal{input: stdin, output: stdout}
	if !inTTY || !outTTY {
		tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
		if err != nil {
			return nil, fmt.Errorf("open controlling terminal: %w", err)
		}
		t.tty = tty
		if !inTTY {
			t.input = tty
		}
		if !outTTY {
			t.output = tty
		}
	}
	// Styles are built against the process stdout; match them to wherever
	// the frames are actually drawn.
	profile := termenv.NewOutput(t.output).EnvColorProfile()
	lipgloss.SetColorProfile(profile)
	events.App.Terminal(t.tty != nil, int(profile))
	return t, nil
}

// Close releases the controlling terminal when one was opened.
func (t *terminal) Close() error {
	if t == nil || t.tty == nil {
		return nil
	}
	err := t.tty.Close()
	t.tty = nil
	return err
}
