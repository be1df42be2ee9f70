package clipboard

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the output cannot carry an OSC 52 sequence.
var ErrNoTerminal = errors.New("clipboard: output is not a terminal")

// OSC52Writer copies through the terminal's OSC 52 escape sequence.
type OSC52Writer struct {
	Out io.Writer
	// IsTerminal overrides the TTY check; nil means inspect Out.
	IsTerminal func() bool
}

func NewOSC52Writer(f *os.File) *OSC52Writer {
	return &OSC52Writer{Out: f}
}

func (w *OSC52Writer) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !w.terminal() {
		return ErrNoTerminal
	}

	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(w.Out)
	return err
}

func (w *OSC52Writer) terminal() bool {
	if w.IsTerminal != nil {
		return w.IsTerminal()
	}
	f, ok := w.Out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
