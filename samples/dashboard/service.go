package dashboard

import (
	"github.com/google/wire"

	"github.com/weegigs/tally-go/connectors/tallynats"
	"github.com/weegigs/tally-go/support"
	"github.com/weegigs/tally-go/tally"
)

// NewCounterContainer creates the process wide container and publishes it to
// the registry before any view can resolve it.
func NewCounterContainer(registry *tally.Registry) (*tally.Container, error) {
	container := tally.NewContainer()
	if err := registry.Publish(container); err != nil {
		return nil, err
	}

	return container, nil
}

func NewCounterService(container *tally.Container) tally.Service {
	return tally.NewService(container)
}

var Views = wire.NewSet(NewHeader, NewPanel, NewDashboard)

var Local = wire.NewSet(
	tally.NewRegistry,
	NewCounterContainer,
	NewCounterService,
	Views,
)

var Live = wire.NewSet(
	Local,
	support.NatsURL,
	tallynats.Connect,
	tallynats.NewRelay,
)
