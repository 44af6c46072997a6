package random

import (
	mathrand "math/rand"
)

// SeededRandom implements Random using a seeded math/rand source,
// giving reproducible sequences for simulations and replays
type SeededRandom struct {
	rng *mathrand.Rand
}

// NewSeeded creates a SeededRandom with the given seed
func NewSeeded(seed int64) *SeededRandom {
	return &SeededRandom{
		rng: mathrand.New(mathrand.NewSource(seed)),
	}
}

// Ensure SeededRandom implements Random
var _ Random = (*SeededRandom)(nil)

// Intn returns a random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// String generates a random string of the given length from the given alphabet
func (r *SeededRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.rng.Intn(len(alphabet))]
	}
	return string(result)
}
