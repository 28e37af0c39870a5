package tally

import "context"

// command handlers

func increment() CommandHandler {
	var handler CommandHandlerFunction[Increment] = func(ctx context.Context, command Increment, current Snapshot, apply ChangePublisher) error {
		amount, err := stepAmount(command.Amount)
		if err != nil {
			return err
		}

		_, err = apply(ctx, Options(), Incremented{Amount: amount})

		return err
	}

	return handler
}

func decrement() CommandHandler {
	var handler CommandHandlerFunction[Decrement] = func(ctx context.Context, command Decrement, current Snapshot, apply ChangePublisher) error {
		amount, err := stepAmount(command.Amount)
		if err != nil {
			return err
		}

		_, err = apply(ctx, Options(), Decremented{Amount: amount})

		return err
	}

	return handler
}

// a zero amount requests a single step
func stepAmount(amount int) (int, error) {
	if amount < 0 {
		return 0, InvalidAmount(amount)
	}

	if amount == 0 {
		return 1, nil
	}

	return amount, nil
}

func DefaultHandlers() CommandHandlers {
	return CommandHandlers{
		CommandNameOf(Increment{}): increment(),
		CommandNameOf(Decrement{}): decrement(),
	}
}
