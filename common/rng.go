package common

// Rand is the source of randomness used by the simulation and the synthesizer.
// Random returns a float64 in [0, 1).
type Rand interface {
	Random() float64
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Produces deterministic sequences for reproducible sessions and tests.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Seed returns the seed the generator was created or last reset with.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Random generates the next number using the Mulberry32 algorithm.
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomFloat returns a float in [min, max).
func RandomFloat(r Rand, min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// RandomInt returns an integer in [min, max).
func RandomInt(r Rand, min, max int) int {
	return int(r.Random()*float64(max-min)) + min
}

// SessionSeed mixes a base seed with a counter. game.Session reseeds with
// counters 1, 2, ... per run; frontends derive the audio generator from
// counter 0.
func SessionSeed(baseSeed uint32, session int) uint32 {
	seed := baseSeed ^ (uint32(session) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
