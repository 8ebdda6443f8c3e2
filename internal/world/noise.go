package world

import (
	"math/rand"

	"github.com/ojrac/opensimplex-go"
)

// NoiseField is a seeded 2D coherent noise source. It is immutable once built,
// so one field can be shared by any number of concurrent chunk builds.
type NoiseField struct {
	seed  int64
	noise opensimplex.Noise
}

// NewNoiseField creates a noise field for the given seed.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{
		seed:  seed,
		noise: opensimplex.New(seed),
	}
}

// Seed returns the seed the field was built with.
func (n *NoiseField) Seed() int64 {
	return n.seed
}

// Sample returns the noise value at (x, z) in [-1, 1].
func (n *NoiseField) Sample(x, z float64) float64 {
	v := n.noise.Eval2(x, z)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// SampleScaled samples at (x*frequency, z*frequency) and scales the result by amplitude.
func (n *NoiseField) SampleScaled(x, z, frequency, amplitude float64) float64 {
	return n.Sample(x*frequency, z*frequency) * amplitude
}

func hash2(x int64, z int64, seed int64) uint64 {
	// SplitMix64 style integer hash, stable across runs for same inputs
	v := uint64(x) + (uint64(z) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

// chunkRNG returns the random source used for everything in a chunk that is
// not noise driven (tree sites, trunk heights). Same seed and coordinate,
// same sequence.
func chunkRNG(seed int64, chunkX, chunkZ int) *rand.Rand {
	return rand.New(rand.NewSource(int64(hash2(int64(chunkX), int64(chunkZ), seed))))
}
