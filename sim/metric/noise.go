package metric

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand"
)

// Noisy adds seeded Gaussian noise to an inner source.
//
// The noise at time t is derived from Seed XOR fnv1a64(bits of t), so
// Evaluate stays a pure function of t: replaying a run with the same seed
// reproduces the identical metric stream regardless of call order, and a
// reset run needs no RNG state restored.
type Noisy struct {
	Inner  Source
	StdDev float64
	Seed   int64
}

func (n Noisy) Evaluate(t float64) float64 {
	v := n.Inner.Evaluate(t)
	if n.StdDev <= 0 {
		return v
	}
	rng := rand.New(rand.NewSource(n.Seed ^ hashTime(t)))
	return v + rng.NormFloat64()*n.StdDev
}

// hashTime computes fnv1a64 over the IEEE-754 bits of t.
func hashTime(t float64) int64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(t))
	h := fnv.New64a()
	h.Write(buf[:])
	return int64(h.Sum64())
}
