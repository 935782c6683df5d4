// Package ids implements the identifier and randomness ports.
package ids

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
)

var (
	_ driven.IDGenerator = UUID{}
	_ driven.IDGenerator = (*Sequence)(nil)
	_ driven.Random      = (*Rand)(nil)
)

// UUID generates time-ordered UUIDv7 identifiers, so IDs minted in the
// same millisecond stay unique and sort by creation.
type UUID struct{}

// NewID returns a new UUIDv7, falling back to a random v4.
func (UUID) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Sequence yields prefix-1, prefix-2, ... and is meant for tests and
// reproducible demo output.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

// NewSequence creates a Sequence with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier.
func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}

// Rand is a goroutine-safe pseudo-random source.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a Rand seeded from the runtime.
func NewRand() *Rand {
	return &Rand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRand returns a Rand with a fixed seed.
func NewSeededRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed))}
}

// IntN returns a value in [0, n).
func (r *Rand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(n)
}
