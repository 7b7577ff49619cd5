// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package display

import (
	"fmt"
	"io"
)

// Writer renders each latched value as a line of text. A nil Output
// discards the values.
type Writer struct {
	Output io.Writer
	Hex    bool // Render as two hex digits instead of decimal.

	Err error // First write error; later values are dropped.
}

var _ Display = (*Writer)(nil)

// Latch writes the value to the output.
func (dw *Writer) Latch(value uint8) {
	if dw.Output == nil || dw.Err != nil {
		return
	}

	format := "%3d\n"
	if dw.Hex {
		format = "%02X\n"
	}

	_, dw.Err = fmt.Fprintf(dw.Output, format, value)
}
