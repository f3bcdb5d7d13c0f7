// Package console implements the input and output devices a Brainfuck
// machine is connected to.
package console

import (
	"bufio"
	"io"
	"strings"
)

// Stdio is a console backed by an arbitrary reader and writer. It
// serves the line-buffered input modes; ReadKey falls back to a single
// byte read, which is the best a pipe can do.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

func New(r io.Reader, w io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(r), out: w}
}

// ReadLine reads one line, without its terminator.
func (c *Stdio) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Stdio) ReadKey() (byte, error) {
	return c.in.ReadByte()
}

func (c *Stdio) WriteByte(b byte) {
	c.out.Write([]byte{b})
}
