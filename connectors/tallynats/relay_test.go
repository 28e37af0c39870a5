package tallynats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/weegigs/tally-go/tally"
)

func TestRelaysChangesToRemoteWatchers(t *testing.T) {
	ctx := context.Background()
	container := tally.NewContainer()

	relay, conn, teardown, err := NewTestRelay(ctx, container)
	if err != nil {
		t.Logf("Unexpected failure %+v", err)
		t.FailNow()
	}
	defer teardown()

	watcher, release, err := NewRemoteWatcher(conn)
	assert.NoError(t, err)
	defer release()

	assert.Equal(t, relay.Subject(), watcher.Subject())

	recorder := tally.NewChangeRecorder()
	subscription := watcher.Watch(recorder)
	defer subscription.Cancel()

	container.Increment(ctx)
	container.Increment(ctx)
	container.Increment(ctx)
	container.Decrement(ctx)

	assert.Eventually(t, func() bool {
		return recorder.Count() == 4
	}, 10*time.Second, 50*time.Millisecond)

	assert.Equal(t, []int{1, 2, 3, 2}, recorder.Values())
	assert.Equal(t, 2, watcher.Reading().Value)
	assert.Equal(t, container.Snapshot().Revision, watcher.Reading().Revision)
}

func TestLateWatchersAdoptTheRelayedValue(t *testing.T) {
	ctx := context.Background()
	container := tally.NewContainer()

	_, conn, teardown, err := NewTestRelay(ctx, container)
	if err != nil {
		t.Logf("Unexpected failure %+v", err)
		t.FailNow()
	}
	defer teardown()

	container.Increment(ctx)
	container.Increment(ctx)
	container.Increment(ctx)

	watcher, release, err := NewRemoteWatcher(conn)
	assert.NoError(t, err)
	defer release()

	container.Decrement(ctx)

	assert.Eventually(t, func() bool {
		return watcher.Reading().Value == 2
	}, 10*time.Second, 50*time.Millisecond)
}

func TestWatchersIgnoreOtherCounters(t *testing.T) {
	ctx := context.Background()
	container := tally.NewContainer()

	_, conn, teardown, err := NewTestRelay(ctx, container, ForCounter("lobby"))
	if err != nil {
		t.Logf("Unexpected failure %+v", err)
		t.FailNow()
	}
	defer teardown()

	lobby, releaseLobby, err := NewRemoteWatcher(conn, ForCounter("lobby"))
	assert.NoError(t, err)
	defer releaseLobby()

	other, releaseOther, err := NewRemoteWatcher(conn, ForCounter("backstage"))
	assert.NoError(t, err)
	defer releaseOther()

	container.Increment(ctx)

	assert.Eventually(t, func() bool {
		return lobby.Reading().Value == 1
	}, 10*time.Second, 50*time.Millisecond)

	assert.Equal(t, 0, other.Reading().Value)
}
