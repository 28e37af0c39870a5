package tally

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Projection maintains a local read model of the counter from its change
// stream. Changes are reduced with the same reducers that drive the container,
// so a projection can never disagree with the container about the floor.
type Projection struct {
	mu       sync.RWMutex
	log      *zerolog.Logger
	reducers Reducers
	state    Counter
	revision Revision
}

func NewProjection() *Projection {
	return &Projection{
		log:      &log.Logger,
		reducers: DefaultReducers(),
		revision: InitialRevision,
	}
}

// Seed primes the projection from a snapshot. Snapshots at or behind the
// projection's revision are ignored.
func (projection *Projection) Seed(snapshot Snapshot) {
	projection.mu.Lock()
	defer projection.mu.Unlock()

	if snapshot.Revision <= projection.revision {
		return
	}

	projection.state = Counter{Current: snapshot.Value}
	projection.revision = snapshot.Revision
}

func (projection *Projection) Project(change Change) error {
	projection.mu.Lock()
	defer projection.mu.Unlock()

	// revisions are monotonic, replays and stale deliveries are skipped
	if change.Revision <= projection.revision {
		return nil
	}

	if reducer := projection.reducers[change.Type]; reducer != nil {
		if err := reducer.Reduce(&projection.state, &change); err != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to project %s", change.Type))
		}
	}

	// a projection that joined mid stream has no base to reduce from; the
	// recorded post change value is authoritative
	if projection.state.Value() != change.Value {
		projection.state = Counter{Current: change.Value}
	}

	projection.revision = change.Revision

	return nil
}

func (projection *Projection) OnChange(change Change) {
	if err := projection.Project(change); err != nil {
		projection.log.Warn().
			Err(err).
			Str("change", change.Type.String()).
			Msg("failed to project change")
	}
}

func (projection *Projection) Reading() Snapshot {
	projection.mu.RLock()
	defer projection.mu.RUnlock()

	return Snapshot{Value: projection.state.Value(), Revision: projection.revision}
}
