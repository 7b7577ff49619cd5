// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package internal

import (
	"fmt"
	"iter"
)

// Concat2 concatenates multiple dual-return iterators into a single iterator sequence.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Hexed yields each value of a slice named by prefix and its hex index,
// ie "m0" ... "mf".
func Hexed[V any](prefix string, values []V) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for n, val := range values {
			if !yield(fmt.Sprintf("%v%x", prefix, n), val) {
				return
			}
		}
	}
}
