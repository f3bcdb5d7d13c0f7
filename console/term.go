package console

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Term is a console whose ReadKey consumes one keypress from the
// controlling terminal without echoing it and without waiting for a
// newline. Line input and output behave as Stdio.
type Term struct {
	*Stdio
	tty *os.File
}

// NewTerm returns a Term reading keypresses and lines from the given
// tty (normally os.Stdin) and writing to w.
func NewTerm(tty *os.File, w io.Writer) *Term {
	return &Term{Stdio: New(tty, w), tty: tty}
}

// ReadKey puts the terminal into raw mode for the duration of a single
// byte read, so the keypress is neither echoed nor line-buffered.
func (t *Term) ReadKey() (byte, error) {
	fd := int(t.tty.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer term.Restore(fd, old)
	var b [1]byte
	if _, err := t.tty.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}
