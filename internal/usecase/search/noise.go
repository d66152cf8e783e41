package search

import "math/rand/v2"

// jitterAmplitude is the half-width of the symmetric score perturbation.
const jitterAmplitude = 0.1

// RandomNoise draws uniform jitter from a seedable PRNG.
type RandomNoise struct {
	rng *rand.Rand
}

// NewRandomNoise creates a noise source from the shared global PRNG.
func NewRandomNoise() *RandomNoise {
	return &RandomNoise{}
}

// NewSeededNoise creates a reproducible noise source.
func NewSeededNoise(seed uint64) *RandomNoise {
	return &RandomNoise{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Jitter returns a uniform value in [-0.1, +0.1).
func (n *RandomNoise) Jitter() float64 {
	f := rand.Float64
	if n.rng != nil {
		f = n.rng.Float64
	}
	return (f()*2 - 1) * jitterAmplitude
}

// ZeroNoise disables jitter entirely, making semantic scoring deterministic.
type ZeroNoise struct{}

// Jitter always returns 0.
func (ZeroNoise) Jitter() float64 { return 0 }
