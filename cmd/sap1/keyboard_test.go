package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardWait(t *testing.T) {
	assert := assert.New(t)

	r, w, err := os.Pipe()
	assert.NoError(err)
	defer r.Close()

	kb := newKeyboard(r)
	assert.False(kb.raw)

	_, err = w.Write([]byte("\n\n"))
	assert.NoError(err)
	w.Close()

	assert.NoError(kb.wait())
	assert.NoError(kb.wait())
	assert.ErrorIs(kb.wait(), io.EOF)
}
