package main

import (
	"github.com/weegigs/tally-go/connectors/tallynats"
	"github.com/weegigs/tally-go/samples/dashboard"
	"github.com/weegigs/tally-go/tally"
)

type App struct {
	Dashboard *dashboard.Dashboard
	Service   tally.Service
	Relay     *tallynats.Relay
}

func NewApp(board *dashboard.Dashboard, service tally.Service) *App {
	return &App{Dashboard: board, Service: service}
}

func NewLiveApp(board *dashboard.Dashboard, service tally.Service, relay *tallynats.Relay) *App {
	return &App{Dashboard: board, Service: service, Relay: relay}
}
