package ws_fx

import (
	"go.uber.org/fx"

	"cargocal/internal/ws"
)

var Module = fx.Provide(provideHub, provideBroadcaster)

func provideHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func provideBroadcaster(hub *ws.Hub) *ws.Broadcaster {
	return ws.NewBroadcaster(hub)
}
