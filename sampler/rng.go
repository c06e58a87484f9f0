// SPDX-License-Identifier: MIT

// Package sampler: random stream construction.
//
// Determinism: a seed fully determines the stream. The PCG source takes two
// 64-bit words; the second is derived from the first with a SplitMix64
// finalizer so that nearby seeds (1, 2, 3, ...) do not start correlated.
//
// Concurrency: rand.Source and *rand.Rand are not goroutine-safe; the
// Sampler guards them with its mutex.

package sampler

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// streamIncrement selects the PCG increment word for a seed.
const streamIncrement uint64 = 1

// sourceFromSeed returns the deterministic source for seed.
// Complexity: O(1).
func sourceFromSeed(seed uint64) rand.Source {
	return rand.NewPCG(seed, deriveSeed(seed, streamIncrement))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// word with the SplitMix64 finalizer.
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// stream bundles the uniform and standard-normal views of one source.
// Both advance the same underlying state.
type stream struct {
	uniform *rand.Rand
	normal  distuv.Normal
}

func newStream(src rand.Source) stream {
	return stream{
		uniform: rand.New(src),
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}
