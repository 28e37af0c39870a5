package tallynats

import (
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/tally-go/tally"
)

// RemoteWatcher mirrors a relayed counter into a local projection and fans
// relayed changes out to its own observers. The projection reads zero until
// the first change arrives; the recorded value carried by each change keeps
// the mirror honest from then on.
type RemoteWatcher struct {
	cfg          config
	projection   *tally.Projection
	observers    *tally.ObserverSet
	subscription *nats.Subscription
	latest       tally.Revision
}

func NewRemoteWatcher(conn *nats.Conn, options ...Option) (*RemoteWatcher, func(), error) {
	watcher := &RemoteWatcher{
		cfg:        configure(options...),
		projection: tally.NewProjection(),
		observers:  tally.NewObserverSet(),
		latest:     tally.InitialRevision,
	}

	subscription, err := conn.Subscribe(subject(watcher.cfg.name), watcher.receive)
	if err != nil {
		return nil, nil, err
	}
	watcher.subscription = subscription

	release := func() {
		if err := watcher.subscription.Unsubscribe(); err != nil {
			log.Err(err).Msg("remote watcher failed to unsubscribe cleanly")
		}
	}

	return watcher, release, nil
}

func (watcher *RemoteWatcher) Subject() string {
	return subject(watcher.cfg.name)
}

func (watcher *RemoteWatcher) Reading() tally.Snapshot {
	return watcher.projection.Reading()
}

func (watcher *RemoteWatcher) Watch(observer tally.Observer) *tally.Subscription {
	return watcher.observers.Watch(observer)
}

// receive runs on the subscription's delivery routine, one message at a time.
func (watcher *RemoteWatcher) receive(msg *nats.Msg) {
	set := &ChangeSet{}
	if err := watcher.cfg.marshaller.Unmarshal(msg.Data, set); err != nil {
		log.Err(err).Str("subject", msg.Subject).Msg("failed to decode change set")
		return
	}

	for _, record := range set.Changes {
		change := record.Change()

		// redelivered or replayed records are dropped
		if change.Revision <= watcher.latest {
			continue
		}
		watcher.latest = change.Revision

		if err := watcher.projection.Project(change); err != nil {
			log.Err(err).Str("change", change.Type.String()).Msg("failed to project relayed change")
			continue
		}

		watcher.observers.Notify(change)
	}
}
