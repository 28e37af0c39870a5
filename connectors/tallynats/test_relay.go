package tallynats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/weegigs/tally-go/tally"
)

// NewTestRelay starts a disposable NATS server, connects a relay for the
// container to it and returns the connection for watchers. The teardown stops
// the relay, closes the connection and terminates the server.
func NewTestRelay(ctx context.Context, container *tally.Container, options ...Option) (*Relay, *nats.Conn, func(), error) {
	req := testcontainers.ContainerRequest{
		Image:        "nats:alpine",
		ExposedPorts: []string{"4222/tcp"},
		WaitingFor:   wait.ForListeningPort("4222"),
	}

	server, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	host, err := server.Host(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	port, err := server.MappedPort(ctx, "4222")
	if err != nil {
		return nil, nil, nil, err
	}

	url := fmt.Sprintf("nats://%s:%s", host, port.Port())

	conn, disconnect, err := Connect(ctx, url)
	if err != nil {
		_ = server.Terminate(ctx)
		return nil, nil, nil, err
	}

	relay, detach, err := NewRelay(conn, container, options...)
	if err != nil {
		disconnect()
		_ = server.Terminate(ctx)
		return nil, nil, nil, err
	}

	teardown := func() {
		detach()
		disconnect()
		if err := server.Terminate(ctx); err != nil {
			panic(err)
		}
	}

	return relay, conn, teardown, nil
}
