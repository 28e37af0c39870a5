package main

import (
	"context"
	"log"
	"net/http"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/tally-go/connectors/tallyhttp"
	"github.com/weegigs/tally-go/support"
	"github.com/weegigs/tally-go/tally"
)

func run() error {
	ctx := context.Background()

	if support.TraceConsole() {
		exporter, err := tally.ConsoleExporter()
		if err != nil {
			return err
		}

		provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		otel.SetTracerProvider(provider)
		defer func() {
			_ = provider.Shutdown(ctx)
		}()
	}

	var app *App
	var cleanup func()
	var err error

	if support.RelayConfigured() {
		app, cleanup, err = live(ctx)
	} else {
		app, cleanup, err = local()
	}
	if err != nil {
		log.Fatalf("failed to configure dashboard: %v", err)
	}
	defer cleanup()

	log.Println("dashboard showing " + app.Dashboard.Header.Render())

	handler := withLogging(tallyhttp.NewHandler(app.Service))

	address := support.ListenAddress()
	log.Println("listening on " + address)
	return http.ListenAndServe(address, handler)
}

func main() {
	if err := run(); err != nil {
		log.Fatal("ListenAndServe:", err)
	}
}
