package tally

import (
	"context"

	"github.com/goccy/go-json"
)

type CommandName string

func (name CommandName) String() string {
	return string(name)
}

type Command any

type RemoteCommand struct {
	CommandName CommandName `json:"command"`
	Payload     Data        `json:"payload"`
}

func CommandNameOf(command Command) CommandName {
	switch cmd := command.(type) {
	case RemoteCommand:
		return cmd.CommandName
	default:
		return CommandName(NameOf(command))
	}
}

type CommandHandler interface {
	HandleCommand(ctx context.Context, command Command, current Snapshot, apply ChangePublisher) error
	HandleRemoteCommand(ctx context.Context, command RemoteCommand, current Snapshot, apply ChangePublisher) error
}

type CommandHandlerFunction[C any] func(ctx context.Context, command C, current Snapshot, apply ChangePublisher) error

func (f CommandHandlerFunction[C]) HandleCommand(ctx context.Context, command Command, current Snapshot, apply ChangePublisher) error {
	cmd, ok := command.(C)
	if !ok {
		return UnexpectedCommand(command)
	}

	return f(ctx, cmd, current, apply)
}

func (f CommandHandlerFunction[C]) HandleRemoteCommand(ctx context.Context, command RemoteCommand, current Snapshot, apply ChangePublisher) error {
	if command.Payload.Encoding != JSONEncoding {
		return InvalidEncoding(JSONEncoding, command.Payload.Encoding)
	}

	var cmd C
	if err := json.UnmarshalContext(ctx, command.Payload.Data, &cmd); err != nil {
		return err
	}

	return f(ctx, cmd, current, apply)
}
