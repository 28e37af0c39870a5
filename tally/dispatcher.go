package tally

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
)

type CommandHandlers map[CommandName]CommandHandler

type Dispatcher interface {
	Dispatch(ctx context.Context, current Snapshot, command Command) (Snapshot, error)
}

type CommandNotFoundError struct {
	Command CommandName
}

func (e CommandNotFoundError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Command)
}

func CommandNotFound(command CommandName) CommandNotFoundError {
	return CommandNotFoundError{Command: command}
}

type RoutedDispatcher struct {
	Apply    ChangePublisher
	Handlers CommandHandlers
}

func (dispatcher *RoutedDispatcher) Dispatch(ctx context.Context, current Snapshot, command Command) (Snapshot, error) {
	name := CommandNameOf(command)

	ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("dispatch %s", name))
	defer span.End()

	handler := dispatcher.Handlers[name]
	if handler == nil {
		return current, CommandNotFound(name)
	}

	return execute(ctx, handler, command, current, dispatcher.Apply)
}

func execute(ctx context.Context, handler CommandHandler, command Command, current Snapshot, apply ChangePublisher) (Snapshot, error) {
	tracking := &trackingPublisher{apply: apply, latest: current}

	switch cmd := command.(type) {
	case RemoteCommand:
		if err := handler.HandleRemoteCommand(ctx, cmd, current, tracking.Apply); err != nil {
			return tracking.latest, err
		}
	default:
		if err := handler.HandleCommand(ctx, cmd, current, tracking.Apply); err != nil {
			return tracking.latest, err
		}
	}

	return tracking.latest, nil
}

// trackingPublisher remembers the snapshot returned by the most recent apply
// so the dispatcher can report the post command state.
type trackingPublisher struct {
	apply  ChangePublisher
	latest Snapshot
}

func (publisher *trackingPublisher) Apply(ctx context.Context, options PublishOptions, deltas ...Delta) (Snapshot, error) {
	snapshot, err := publisher.apply(ctx, options, deltas...)
	if err != nil {
		return snapshot, err
	}

	publisher.latest = snapshot

	return snapshot, nil
}
