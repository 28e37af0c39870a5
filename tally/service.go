package tally

import (
	"context"

	"go.opentelemetry.io/otel"
)

const tracerName = "tally-service"

type Service interface {
	Current(ctx context.Context) (Snapshot, error)
	Execute(ctx context.Context, command Command) (Snapshot, error)
	Watch(observer Observer) *Subscription
}

type ServiceDescriptor struct {
	Handlers map[CommandName]func() CommandHandler
}

func DefaultDescriptor() ServiceDescriptor {
	return ServiceDescriptor{
		Handlers: map[CommandName]func() CommandHandler{
			CommandNameOf(Increment{}): increment,
			CommandNameOf(Decrement{}): decrement,
		},
	}
}

func CreateService(container *Container, descriptor ServiceDescriptor) *containerService {
	handlers := make(CommandHandlers, len(descriptor.Handlers))
	for name, create := range descriptor.Handlers {
		handlers[name] = create()
	}

	dispatcher := &RoutedDispatcher{
		Apply:    container.Apply,
		Handlers: handlers,
	}

	return &containerService{container: container, dispatcher: dispatcher}
}

func NewService(container *Container) *containerService {
	return CreateService(container, DefaultDescriptor())
}

type containerService struct {
	container  *Container
	dispatcher *RoutedDispatcher
}

func (service *containerService) Current(ctx context.Context) (Snapshot, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "read snapshot")
	defer span.End()

	return service.container.Snapshot(), nil
}

func (service *containerService) Execute(ctx context.Context, command Command) (Snapshot, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "execute command")
	defer span.End()

	return service.dispatcher.Dispatch(ctx, service.container.Snapshot(), command)
}

func (service *containerService) Watch(observer Observer) *Subscription {
	return service.container.Watch(observer)
}
