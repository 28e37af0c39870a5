package tally

import (
	"context"
	"sync"
	"testing"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
)

// ChangeRecorder is an Observer that retains every change it is notified of.
type ChangeRecorder struct {
	mu      sync.Mutex
	changes []Change
}

func NewChangeRecorder() *ChangeRecorder {
	return &ChangeRecorder{}
}

func (recorder *ChangeRecorder) OnChange(change Change) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	recorder.changes = append(recorder.changes, change)
}

func (recorder *ChangeRecorder) Count() int {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	return len(recorder.changes)
}

func (recorder *ChangeRecorder) Values() []int {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	values := make([]int, len(recorder.changes))
	for index, change := range recorder.changes {
		values[index] = change.Value
	}

	return values
}

func (recorder *ChangeRecorder) Changes() []Change {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	changes := make([]Change, len(recorder.changes))
	copy(changes, recorder.changes)

	return changes
}

// ContainerValidationSuite exercises the behavioural contract of a counter
// container. Each test receives a fresh container from the provided factory.
type ContainerValidationSuite struct {
	ctx   context.Context
	fresh func() *Container
	faker faker.Faker
}

func NewContainerValidationSuite(ctx context.Context, fresh func() *Container) *ContainerValidationSuite {
	f := faker.New()

	return &ContainerValidationSuite{ctx: ctx, fresh: fresh, faker: f}
}

func (s *ContainerValidationSuite) Run(t *testing.T) {
	t.Run("starts at zero", s.StartsAtZero)
	t.Run("never reads below zero", s.NeverReadsBelowZero)
	t.Run("floors decrement at zero", s.FloorsDecrementAtZero)
	t.Run("restores the value after an inverse pair", s.RestoresValueAfterInversePair)
	t.Run("delivers every change to active watchers", s.DeliversEveryChange)
	t.Run("stops delivery after cancellation", s.StopsDeliveryAfterCancel)
	t.Run("late watcher sees only subsequent changes", s.LateWatcherSeesOnlySubsequentChanges)
	t.Run("supports multiple watchers", s.SupportsMultipleWatchers)
	t.Run("rejects stale expected revisions", s.RejectsStaleExpectedRevision)
	t.Run("records correlation metadata", s.RecordsCorrelationMetadata)
}

func (s *ContainerValidationSuite) StartsAtZero(t *testing.T) {
	container := s.fresh()

	snapshot := container.Snapshot()

	assert.Equal(t, 0, container.Value())
	assert.Equal(t, InitialRevision, snapshot.Revision)
	assert.False(t, snapshot.Initialized())
}

func (s *ContainerValidationSuite) NeverReadsBelowZero(t *testing.T) {
	container := s.fresh()

	operations := s.faker.IntBetween(20, 60)
	for i := 0; i < operations; i++ {
		if s.faker.IntBetween(0, 1) == 0 {
			container.Increment(s.ctx)
		} else {
			container.Decrement(s.ctx)
		}

		assert.GreaterOrEqual(t, container.Value(), 0)
	}
}

func (s *ContainerValidationSuite) FloorsDecrementAtZero(t *testing.T) {
	container := s.fresh()

	recorder := NewChangeRecorder()
	subscription := container.Watch(recorder)
	defer subscription.Cancel()

	first := container.Decrement(s.ctx)
	second := container.Decrement(s.ctx)

	assert.Equal(t, 0, first.Value)
	assert.Equal(t, 0, second.Value)
	assert.NotEqual(t, first.Revision, second.Revision)
	assert.Equal(t, []int{0, 0}, recorder.Values())
}

func (s *ContainerValidationSuite) RestoresValueAfterInversePair(t *testing.T) {
	container := s.fresh()

	initial := s.faker.IntBetween(1, 10)
	for i := 0; i < initial; i++ {
		container.Increment(s.ctx)
	}

	container.Increment(s.ctx)
	restored := container.Decrement(s.ctx)

	assert.Equal(t, initial, restored.Value)
}

func (s *ContainerValidationSuite) DeliversEveryChange(t *testing.T) {
	container := s.fresh()

	recorder := NewChangeRecorder()
	subscription := container.Watch(recorder)
	defer subscription.Cancel()

	ups := s.faker.IntBetween(2, 8)
	downs := s.faker.IntBetween(2, 8)

	for i := 0; i < ups; i++ {
		container.Increment(s.ctx)
	}
	for i := 0; i < downs; i++ {
		container.Decrement(s.ctx)
	}

	assert.Equal(t, ups+downs, recorder.Count())
}

func (s *ContainerValidationSuite) StopsDeliveryAfterCancel(t *testing.T) {
	container := s.fresh()

	recorder := NewChangeRecorder()
	subscription := container.Watch(recorder)

	container.Increment(s.ctx)
	container.Increment(s.ctx)

	subscription.Cancel()

	container.Increment(s.ctx)
	container.Decrement(s.ctx)

	assert.Equal(t, 2, recorder.Count())
	assert.Equal(t, 0, container.Watchers())
}

func (s *ContainerValidationSuite) LateWatcherSeesOnlySubsequentChanges(t *testing.T) {
	container := s.fresh()

	container.Increment(s.ctx)
	container.Increment(s.ctx)
	container.Increment(s.ctx)

	recorder := NewChangeRecorder()
	subscription := container.Watch(recorder)
	defer subscription.Cancel()

	for i := 0; i < 5; i++ {
		container.Decrement(s.ctx)
	}

	assert.Equal(t, 0, container.Value())
	assert.Equal(t, []int{2, 1, 0, 0, 0}, recorder.Values())
}

func (s *ContainerValidationSuite) SupportsMultipleWatchers(t *testing.T) {
	container := s.fresh()

	first := NewChangeRecorder()
	second := NewChangeRecorder()

	one := container.Watch(first)
	two := container.Watch(second)
	defer two.Cancel()

	container.Increment(s.ctx)

	one.Cancel()

	container.Increment(s.ctx)

	assert.Equal(t, 1, first.Count())
	assert.Equal(t, 2, second.Count())
}

func (s *ContainerValidationSuite) RejectsStaleExpectedRevision(t *testing.T) {
	container := s.fresh()

	stale := container.Snapshot().Revision
	current := container.Increment(s.ctx)

	_, err := container.Apply(s.ctx, Options(WithExpectedRevision(stale)), Incremented{Amount: 1})
	assert.ErrorIs(t, err, RevisionConflict)
	assert.Equal(t, current.Value, container.Value())

	applied, err := container.Apply(s.ctx, Options(WithExpectedRevision(current.Revision)), Incremented{Amount: 1})
	assert.NoError(t, err)
	assert.Equal(t, current.Value+1, applied.Value)
}

func (s *ContainerValidationSuite) RecordsCorrelationMetadata(t *testing.T) {
	container := s.fresh()

	recorder := NewChangeRecorder()
	subscription := container.Watch(recorder)
	defer subscription.Cancel()

	correlation := CorrelationID(s.faker.Lorem().Word())

	_, err := container.Apply(s.ctx, Options(WithCorrelationId(correlation)), Incremented{Amount: 1})
	assert.NoError(t, err)

	changes := recorder.Changes()
	if assert.Len(t, changes, 1) {
		assert.Equal(t, correlation, changes[0].Metadata.CorrelationId)
		assert.Equal(t, changes[0].Value, 1)
	}
}
