package http

import (
	nethttp "net/http"

	"github.com/claes/tabcast/internal/events"
)

// HealthHandler reports liveness and how many event listeners are attached.
func HealthHandler(hub *events.Hub) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		writeJSON(w, struct {
			Status    string `json:"status"`
			Listeners int    `json:"listeners"`
		}{Status: "ok", Listeners: hub.Subscribers()})
	})
}
