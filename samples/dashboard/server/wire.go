//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/weegigs/tally-go/samples/dashboard"
)

func local() (*App, func(), error) {
	panic(wire.Build(dashboard.Local, NewApp))
}

func live(ctx context.Context) (*App, func(), error) {
	panic(wire.Build(dashboard.Live, NewLiveApp))
}
