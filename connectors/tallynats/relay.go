package tallynats

import (
	"context"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/tally-go/tally"
)

// Connect dials the NATS server, retrying briefly while it comes up.
func Connect(ctx context.Context, url string, options ...nats.Option) (*nats.Conn, func(), error) {
	var conn *nats.Conn

	err := retry.Do(
		func() error {
			var err error
			conn, err = nats.Connect(url, options...)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(250*time.Millisecond),
	)
	if err != nil {
		return nil, nil, err
	}

	return conn, func() { conn.Close() }, nil
}

// Relay forwards every change committed to the container onto a NATS subject.
// Delivery is fire and forget; the relay never blocks or fails a counter
// operation.
type Relay struct {
	conn         *nats.Conn
	cfg          config
	subscription *tally.Subscription
}

func NewRelay(conn *nats.Conn, container *tally.Container, options ...Option) (*Relay, func(), error) {
	relay := &Relay{conn: conn, cfg: configure(options...)}
	relay.subscription = container.Watch(tally.ObserverFunc(relay.forward))

	detach := func() {
		relay.subscription.Cancel()
		if err := relay.conn.Flush(); err != nil {
			log.Err(err).Msg("failed to flush relayed changes")
		}
	}

	return relay, detach, nil
}

func (relay *Relay) Subject() string {
	return subject(relay.cfg.name)
}

func (relay *Relay) forward(change tally.Change) {
	set := ChangeSet{
		Counter:  relay.cfg.name,
		Revision: change.Revision,
		Changes:  []ChangeRecord{recordOf(change)},
	}

	encoded, err := relay.cfg.marshaller.Marshal(set)
	if err != nil {
		log.Err(err).Str("change", change.Type.String()).Msg("failed to encode change set")
		return
	}

	if err := relay.conn.Publish(relay.Subject(), encoded); err != nil {
		log.Err(err).Str("subject", relay.Subject()).Msg("failed to relay change set")
	}
}
