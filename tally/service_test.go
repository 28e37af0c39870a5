package tally

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type test = func(t *testing.T)

func TestCounterService(t *testing.T) {
	service := NewService(NewContainer())

	t.Run("should create counter service", createService(service))
	t.Run("should read an empty counter", emptyCounter(service))
	t.Run("should increment the counter", incrementCounter(service))
	t.Run("should decrement the counter", decrementCounter(service))
	t.Run("should notify watchers of executed commands", notifyWatchers(service))
	t.Run("should reject unknown commands", rejectUnknownCommands(service))
}

func createService(service Service) test {
	return func(t *testing.T) {
		assert.NotNil(t, service)
	}
}

func emptyCounter(service Service) test {
	return func(t *testing.T) {
		snapshot, err := service.Current(context.Background())
		if err != nil {
			t.Logf("Unexpected failure %+v", err)
			t.Fail()
			return
		}

		assert.Equal(t, InitialRevision, snapshot.Revision)
		assert.Equal(t, 0, snapshot.Value)
	}
}

func incrementCounter(service Service) test {
	return func(t *testing.T) {
		snapshot, err := service.Execute(context.Background(), Increment{Amount: 2})
		if err != nil {
			t.Logf("Unexpected failure %+v", err)
			t.Fail()
			return
		}

		assert.Equal(t, 2, snapshot.Value)
		assert.True(t, snapshot.Initialized())
	}
}

func decrementCounter(service Service) test {
	return func(t *testing.T) {
		snapshot, err := service.Execute(context.Background(), Decrement{})
		if err != nil {
			t.Logf("Unexpected failure %+v", err)
			t.Fail()
			return
		}

		assert.Equal(t, 1, snapshot.Value)
	}
}

func notifyWatchers(service Service) test {
	return func(t *testing.T) {
		recorder := NewChangeRecorder()
		subscription := service.Watch(recorder)
		defer subscription.Cancel()

		_, err := service.Execute(context.Background(), Increment{})
		assert.NoError(t, err)

		assert.Equal(t, 1, recorder.Count())
	}
}

func rejectUnknownCommands(service Service) test {
	return func(t *testing.T) {
		_, err := service.Execute(context.Background(), TestCommand{})

		var missing CommandNotFoundError
		assert.ErrorAs(t, err, &missing)
	}
}

func TestCreateServiceWithCustomDescriptor(t *testing.T) {
	descriptor := ServiceDescriptor{
		Handlers: map[CommandName]func() CommandHandler{
			CommandNameOf(Increment{}): increment,
		},
	}

	service := CreateService(NewContainer(), descriptor)

	_, err := service.Execute(context.Background(), Increment{})
	assert.NoError(t, err)

	_, err = service.Execute(context.Background(), Decrement{})

	var missing CommandNotFoundError
	assert.ErrorAs(t, err, &missing)
}
