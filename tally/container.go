package tally

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// Container holds the shared counter state. All mutation flows through Apply,
// which records a Change for every delta and notifies subscribed watchers
// after the state transition commits.
type Container struct {
	mu        sync.RWMutex
	state     Counter
	revision  Revision
	reducers  Reducers
	watchers  *ObserverSet
	clock     Clock
	revisions *RevisionGenerator
	ids       IDGenerator
}

type ContainerOption func(container *Container)

func WithClock(clock Clock) ContainerOption {
	return func(container *Container) {
		container.clock = clock
	}
}

func WithRevisionGenerator(generator *RevisionGenerator) ContainerOption {
	return func(container *Container) {
		container.revisions = generator
	}
}

func WithIdGenerator(generator IDGenerator) ContainerOption {
	return func(container *Container) {
		container.ids = generator
	}
}

func WithReducers(reducers Reducers) ContainerOption {
	return func(container *Container) {
		container.reducers = reducers
	}
}

func NewContainer(options ...ContainerOption) *Container {
	container := &Container{
		revision: InitialRevision,
		watchers: NewObserverSet(),
	}

	for _, option := range options {
		option(container)
	}

	if container.clock == nil {
		container.clock = SystemClock()
	}

	if container.revisions == nil {
		container.revisions = NewRevisionGenerator()
	}

	if container.ids == nil {
		container.ids = NewDefaultIdGenerator(container.clock)
	}

	if container.reducers == nil {
		container.reducers = DefaultReducers()
	}

	return container
}

func (container *Container) Value() int {
	container.mu.RLock()
	defer container.mu.RUnlock()

	return container.state.Value()
}

func (container *Container) Snapshot() Snapshot {
	container.mu.RLock()
	defer container.mu.RUnlock()

	return container.snapshot()
}

// callers hold container.mu
func (container *Container) snapshot() Snapshot {
	return Snapshot{Value: container.state.Value(), Revision: container.revision}
}

// Increment raises the counter by one. Unit deltas cannot conflict or fail to
// encode, so no error is surfaced.
func (container *Container) Increment(ctx context.Context) Snapshot {
	snapshot, _ := container.Apply(ctx, Options(), Incremented{Amount: 1})
	return snapshot
}

// Decrement lowers the counter by one, holding at zero. The floored transition
// is still recorded and notified.
func (container *Container) Decrement(ctx context.Context) Snapshot {
	snapshot, _ := container.Apply(ctx, Options(), Decremented{Amount: 1})
	return snapshot
}

// Apply reduces the deltas onto the counter as a single atomic batch. When
// options carry an expected revision that no longer matches, the batch is
// rejected with RevisionConflict and no state changes.
func (container *Container) Apply(ctx context.Context, options PublishOptions, deltas ...Delta) (Snapshot, error) {
	changes, snapshot, err := container.apply(options, deltas)
	if err != nil {
		return snapshot, err
	}

	for _, change := range changes {
		container.watchers.Notify(change)
	}

	return snapshot, nil
}

func (container *Container) apply(options PublishOptions, deltas []Delta) ([]Change, Snapshot, error) {
	container.mu.Lock()
	defer container.mu.Unlock()

	expected := options.ExpectedRevision
	if expected != "" && expected != container.revision {
		return nil, container.snapshot(), RevisionConflict
	}

	state := container.state
	revision := container.revision
	changes := make([]Change, 0, len(deltas))

	for _, delta := range deltas {
		changeType := ChangeTypeOf(delta)

		reducer := container.reducers[changeType]
		if reducer == nil {
			return nil, container.snapshot(), UnknownChange(changeType)
		}

		data, err := MarshalToData(delta)
		if err != nil {
			return nil, container.snapshot(), errors.Wrap(err, fmt.Sprintf("failed to encode %s", changeType))
		}

		now := container.clock.Now()
		change := Change{
			Id:        container.ids.Create(),
			Type:      changeType,
			Revision:  container.revisions.NewRevision(now),
			Timestamp: TimestampFromTime(now),
			Metadata:  options.ChangeMetadata,
			Data:      data,
		}

		if err := reducer.Reduce(&state, &change); err != nil {
			return nil, container.snapshot(), errors.Wrap(err, fmt.Sprintf("failed to apply %s", changeType))
		}

		change.Value = state.Value()
		revision = change.Revision
		changes = append(changes, change)
	}

	container.state = state
	container.revision = revision

	return changes, container.snapshot(), nil
}

// Watch subscribes the observer to every change committed after this call.
// Cancelling the returned subscription stops delivery.
func (container *Container) Watch(observer Observer) *Subscription {
	return container.watchers.Watch(observer)
}

func (container *Container) Watchers() int {
	return container.watchers.Size()
}
