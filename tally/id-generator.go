package tally

import (
	"math/rand"
	"sync"

	"github.com/oklog/ulid/v2"
)

type IDGenerator interface {
	Create() ChangeID
}

type DefaultIdGenerator struct {
	clock   Clock
	lk      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewDefaultIdGenerator(clock Clock) *DefaultIdGenerator {
	seed := clock.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(seed.UnixNano())), 0)

	return &DefaultIdGenerator{clock: clock, entropy: entropy}
}

func (generator *DefaultIdGenerator) Create() ChangeID {
	generator.lk.Lock()
	defer generator.lk.Unlock()

	now := generator.clock.Now()
	return ChangeID(ulid.MustNew(ulid.Timestamp(now), generator.entropy).String())
}
