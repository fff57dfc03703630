package ports

import "bigtwo/internal/app"

// EventSink delivers app events to the players they address. Adapters
// translate events onto their transport: broadcast messages on a Nakama
// match, rendered panels on a console.
type EventSink interface {
	// Deliver sends the event to its recipients. An event with no
	// recipient list goes to every seat.
	Deliver(evt app.Event) error
}
