package dashboard

import (
	"context"

	"github.com/weegigs/tally-go/tally"
)

// Panel issues counter commands through the service and keeps its own reading
// of the result.
type Panel struct {
	service      tally.Service
	projection   *tally.Projection
	subscription *tally.Subscription
}

func NewPanel(service tally.Service) (*Panel, func()) {
	panel := &Panel{
		service:    service,
		projection: tally.NewProjection(),
	}

	panel.subscription = service.Watch(panel.projection)

	return panel, panel.Close
}

func (panel *Panel) Increment(ctx context.Context) error {
	_, err := panel.service.Execute(ctx, tally.Increment{})
	return err
}

func (panel *Panel) Decrement(ctx context.Context) error {
	_, err := panel.service.Execute(ctx, tally.Decrement{})
	return err
}

func (panel *Panel) Reading() tally.Snapshot {
	return panel.projection.Reading()
}

func (panel *Panel) Close() {
	panel.subscription.Cancel()
}
