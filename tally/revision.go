package tally

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type Revision string

const InitialRevision = Revision("00000000000000000000000000")

func (revision Revision) String() string {
	return string(revision)
}

func (revision Revision) Timestamp() Timestamp {
	id := ulid.MustParse(string(revision))
	return TimestampFromTime(ulid.Time(id.Time()))
}

type RevisionGenerator struct {
	lk      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewRevisionGenerator() *RevisionGenerator {
	seed := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(seed.UnixNano())), 0)

	return &RevisionGenerator{entropy: entropy}
}

func (generator *RevisionGenerator) NewRevision(at time.Time) Revision {
	generator.lk.Lock()
	defer generator.lk.Unlock()

	return Revision(ulid.MustNew(ulid.Timestamp(at), generator.entropy).String())
}
