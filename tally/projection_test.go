package tally

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectionFollowsTheChangeStream(t *testing.T) {
	ctx := context.Background()
	container := NewContainer()

	projection := NewProjection()
	subscription := container.Watch(projection)
	defer subscription.Cancel()

	container.Increment(ctx)
	container.Increment(ctx)
	container.Decrement(ctx)

	reading := projection.Reading()
	assert.Equal(t, 2, reading.Value)
	assert.Equal(t, container.Snapshot().Revision, reading.Revision)
}

func TestProjectionAdoptsTheRecordedValueMidStream(t *testing.T) {
	ctx := context.Background()
	container := NewContainer()

	container.Increment(ctx)
	container.Increment(ctx)
	container.Increment(ctx)

	projection := NewProjection()
	subscription := container.Watch(projection)
	defer subscription.Cancel()

	container.Decrement(ctx)

	assert.Equal(t, 2, projection.Reading().Value)
}

func TestProjectionSkipsReplayedChanges(t *testing.T) {
	ctx := context.Background()
	container := NewContainer()

	recorder := NewChangeRecorder()
	subscription := container.Watch(recorder)
	defer subscription.Cancel()

	container.Increment(ctx)
	container.Increment(ctx)

	projection := NewProjection()
	for _, change := range recorder.Changes() {
		assert.NoError(t, projection.Project(change))
	}

	replay := recorder.Changes()[0]
	assert.NoError(t, projection.Project(replay))

	assert.Equal(t, 2, projection.Reading().Value)
}

func TestProjectionSeedsFromASnapshot(t *testing.T) {
	ctx := context.Background()
	container := NewContainer()

	container.Increment(ctx)
	container.Increment(ctx)

	projection := NewProjection()
	projection.Seed(container.Snapshot())

	assert.Equal(t, 2, projection.Reading().Value)

	projection.Seed(Snapshot{Value: 9, Revision: InitialRevision})
	assert.Equal(t, 2, projection.Reading().Value, "stale seeds are ignored")
}

func TestProjectionIgnoresUnknownChanges(t *testing.T) {
	projection := NewProjection()

	generator := NewRevisionGenerator()
	unknown := Change{
		Type:     ChangeType("tally:reset"),
		Revision: generator.NewRevision(SystemClock().Now()),
		Value:    0,
	}

	assert.NoError(t, projection.Project(unknown))
	assert.Equal(t, 0, projection.Reading().Value)
}
