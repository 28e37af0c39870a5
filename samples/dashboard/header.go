package dashboard

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/tally-go/tally"
)

// Header is a read only view of the counter. It resolves the container
// through the registry and never issues commands.
type Header struct {
	log          *zerolog.Logger
	projection   *tally.Projection
	subscription *tally.Subscription
}

func NewHeader(registry *tally.Registry) (*Header, func(), error) {
	container, err := registry.Resolve()
	if err != nil {
		return nil, nil, err
	}

	header := &Header{
		log:        &log.Logger,
		projection: tally.NewProjection(),
	}

	header.projection.Seed(container.Snapshot())
	header.subscription = container.Watch(tally.ObserverFunc(header.observe))

	return header, header.Close, nil
}

func (header *Header) observe(change tally.Change) {
	header.projection.OnChange(change)
	header.log.Info().
		Int("count", change.Value).
		Str("revision", change.Revision.String()).
		Msg("header updated")
}

func (header *Header) Reading() tally.Snapshot {
	return header.projection.Reading()
}

func (header *Header) Render() string {
	return fmt.Sprintf("count: %d", header.Reading().Value)
}

func (header *Header) Close() {
	header.subscription.Cancel()
}
