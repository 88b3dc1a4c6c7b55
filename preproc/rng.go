package preproc

import "math/rand"

// defaultSeed is the fixed seed used for pseudo-random weight synthesis so
// that two invocations against the same raw edgelist produce the same
// synthesized weights, keeping Preprocess deterministic.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 falls back to
// defaultSeed so callers never accidentally get a zero-entropy stream.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
