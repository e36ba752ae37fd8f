package signaling

import (
	"log/slog"

	"meetngo/pkg/metrics"
)

// Relay fans an inbound frame out to every other peer in the same room.
// Payloads are opaque: no parsing, no envelope.
type Relay struct {
	reg *Registry
	log *slog.Logger
}

func NewRelay(reg *Registry, log *slog.Logger) *Relay {
	return &Relay{reg: reg, log: log}
}

// Broadcast delivers payload to every member of roomID except sender.
// A failed delivery is logged and counted, never returned: a dead peer is
// cleaned up by its own receive loop, and one slow recipient must not cost
// the others their copy.
func (r *Relay) Broadcast(roomID string, sender Peer, payload []byte) {
	for _, p := range r.reg.Members(roomID) {
		if p == sender {
			continue
		}
		if err := p.Send(payload); err != nil {
			metrics.SendFailures.Inc()
			r.log.Debug("relay.send_failed", "room", roomID, "err", err)
			continue
		}
		metrics.MessagesRelayed.Inc()
	}
}
