package guess

import (
	"math/rand"
	"sync"

	"github.com/emiliagray/guessing/internal/random"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(random.NewSeedOrNow()))
)

// GenRandom returns a Guess holding a uniformly distributed value in the
// 0-100 range. It draws from a process-wide generator seeded from
// crypto/rand and is safe for concurrent use.
func GenRandom() Guess {
	rngMu.Lock()
	value := rng.Intn(MaxValue + 1)
	rngMu.Unlock()
	return mustNew(value)
}

// GenRandomFrom returns a Guess drawn from the provided generator.
// Callers that need reproducible sequences pass a generator built from a
// known seed; the generator is not locked here, so concurrent use of a
// shared *rand.Rand is the caller's responsibility.
func GenRandomFrom(rng *rand.Rand) Guess {
	return mustNew(rng.Intn(MaxValue + 1))
}

func mustNew(value int) Guess {
	g, err := New(value)
	if err != nil {
		// Unreachable: drawn values are always within the valid range.
		panic(err)
	}
	return g
}
