package signaling

import (
	"context"
	"log/slog"
	"net/http"

	"meetngo/pkg/metrics"
)

// Presence records live room membership for application-level queries
// (participant counts on the meetings API). Implementations are
// best-effort: the relay's correctness never depends on them.
type Presence interface {
	Track(ctx context.Context, room, connID string)
	Untrack(ctx context.Context, room, connID string)
}

// NopPresence discards presence updates.
type NopPresence struct{}

func (NopPresence) Track(context.Context, string, string)   {}
func (NopPresence) Untrack(context.Context, string, string) {}

// Endpoint owns the signaling sessions: it accepts the upgrade, joins the
// peer to its room, pumps inbound frames through the relay, and guarantees
// the peer leaves the room on any exit path.
type Endpoint struct {
	log      *slog.Logger
	reg      *Registry
	relay    *Relay
	presence Presence
	maxPeers int // 0 = unlimited
}

func NewEndpoint(log *slog.Logger, reg *Registry, relay *Relay, presence Presence, maxPeers int) *Endpoint {
	return &Endpoint{log: log, reg: reg, relay: relay, presence: presence, maxPeers: maxPeers}
}

// ServeWS handles GET /ws/{code}. The code is an opaque, case-sensitive
// room handle; it is not validated beyond being present. A dropped
// connection re-runs the full handshake, there is no resume.
func (e *Endpoint) ServeWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	room := r.PathValue("code")
	if room == "" {
		http.Error(w, "room code required", http.StatusBadRequest)
		return
	}
	if e.maxPeers > 0 && e.reg.Count(room) >= e.maxPeers {
		e.log.Warn("ws.room_full", "room", room)
		http.Error(w, "room full", http.StatusServiceUnavailable)
		return
	}

	ws, err := Accept(w, r)
	if err != nil {
		e.log.Error("ws.accept", "err", err)
		return
	}

	c := NewConn(ws)
	e.reg.Join(room, c)
	metrics.ConnectionsActive.Inc()
	e.presence.Track(ctx, room, c.ID())
	e.log.Debug("ws.joined", "room", room, "conn", c.ID())

	// Leave must run on every exit path, including read errors, or the
	// registry leaks a closed connection.
	defer func() {
		e.reg.Leave(room, c)
		metrics.ConnectionsActive.Dec()
		// r.Context() is already cancelled on abrupt disconnects.
		e.presence.Untrack(context.WithoutCancel(ctx), room, c.ID())
		_ = c.Close()
		e.log.Debug("ws.closed", "room", room, "conn", c.ID())
	}()

	// Outbound writer
	go c.WriteLoop(ctx)

	// Inbound reader: one broadcast per frame until peer close or error
	for {
		payload, ok := c.Read(ctx)
		if !ok {
			return
		}
		e.relay.Broadcast(room, c, payload)
	}
}
