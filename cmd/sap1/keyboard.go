// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"os"

	"golang.org/x/term"
)

var errInterrupt = errors.New(f("interrupted"))

// keyboard waits for a key press between micro-steps.
type keyboard struct {
	in     *os.File
	reader *bufio.Reader
	raw    bool
}

func newKeyboard(in *os.File) *keyboard {
	return &keyboard{
		in:     in,
		reader: bufio.NewReader(in),
		raw:    term.IsTerminal(int(in.Fd())),
	}
}

// wait blocks until a key is pressed, or a line is read when the input is
// not a terminal.
func (kb *keyboard) wait() (err error) {
	if !kb.raw {
		_, err = kb.reader.ReadString('\n')
		return
	}

	fd := int(kb.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer func() { _ = term.Restore(fd, state) }()

	key, err := kb.reader.ReadByte()
	if err != nil {
		return
	}

	// ^C and ^D
	if key == 0x03 || key == 0x04 {
		err = errInterrupt
	}

	return
}
