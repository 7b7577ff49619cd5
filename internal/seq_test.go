package internal

import (
	"iter"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := maps.All(map[string]int{"a": 1})
	b := maps.All(map[string]int{"b": 2})

	got := maps.Collect(Concat2(a, b))
	assert.Equal(map[string]int{"a": 1, "b": 2}, got)

	// Early stop
	count := 0
	for range Concat2(a, b) {
		count++
		break
	}
	assert.Equal(1, count)

	assert.Empty(maps.Collect(Concat2[string, int]()))
}

func TestHexed(t *testing.T) {
	assert := assert.New(t)

	values := make([]uint8, 16)
	values[15] = 0xaa

	var keys []string
	var seq iter.Seq2[string, uint8] = Hexed("m", values)
	for key, val := range seq {
		keys = append(keys, key)
		if key == "mf" {
			assert.Equal(uint8(0xaa), val)
		}
	}
	assert.Len(keys, 16)
	assert.Equal("m0", keys[0])
	assert.Equal("ma", keys[10])
	assert.Equal("mf", keys[15])
}
