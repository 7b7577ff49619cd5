// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package display provides devices for the SAP-1 output latch.
//
// A device is notified each time the latch is loaded. Writer renders the
// values to a stream as the SAP-1 decimal display would show them;
// Recorder queues them for later inspection.
package display

// Display defines the interface for devices attached to the output latch.
type Display interface {
	// Latch is called with each value loaded into the output latch.
	Latch(value uint8)
}
