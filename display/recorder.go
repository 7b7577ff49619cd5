// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package display

// Recorder queues latched values.
type Recorder struct {
	Values []uint8
}

var _ Display = (*Recorder)(nil)

// Latch appends the value to the queue.
func (dr *Recorder) Latch(value uint8) {
	dr.Values = append(dr.Values, value)
}

// Await removes and returns the oldest queued value.
func (dr *Recorder) Await() (value uint8, ok bool) {
	if len(dr.Values) > 0 {
		ok = true
		value = dr.Values[0]
		dr.Values = dr.Values[1:]
	}
	return
}

// Last returns the newest queued value.
func (dr *Recorder) Last() (value uint8, ok bool) {
	if len(dr.Values) > 0 {
		ok = true
		value = dr.Values[len(dr.Values)-1]
	}
	return
}

// Reset empties the queue.
func (dr *Recorder) Reset() {
	dr.Values = nil
}
