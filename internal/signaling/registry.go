package signaling

import (
	"sync"

	"meetngo/pkg/metrics"
)

// Registry maps room codes to the peers currently in them. Rooms are
// created on first join and deleted when their last member leaves. The
// registry never owns a peer's lifecycle, it only tracks membership.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]map[Peer]struct{}
}

func NewRegistry() *Registry {
	return &Registry{rooms: map[string]map[Peer]struct{}{}}
}

// Join adds p to the room, creating it if absent. Idempotent.
func (g *Registry) Join(roomID string, p Peer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	set := g.rooms[roomID]
	if set == nil {
		set = map[Peer]struct{}{}
		g.rooms[roomID] = set
		metrics.RoomsActive.Inc()
	}
	set[p] = struct{}{}
}

// Leave removes p from the room and deletes the room once empty.
// No-op for an unknown room or peer.
func (g *Registry) Leave(roomID string, p Peer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	set := g.rooms[roomID]
	if set == nil {
		return
	}
	delete(set, p)
	if len(set) == 0 {
		delete(g.rooms, roomID)
		metrics.RoomsActive.Dec()
	}
}

// Members returns a snapshot of the room's peers so callers can iterate
// without holding the registry lock across sends.
func (g *Registry) Members(roomID string) []Peer {
	g.mu.Lock()
	defer g.mu.Unlock()
	set := g.rooms[roomID]
	out := make([]Peer, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}

// Exists reports whether the room currently has any members.
func (g *Registry) Exists(roomID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.rooms[roomID]
	return ok
}

// Count returns the room's current member count.
func (g *Registry) Count(roomID string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rooms[roomID])
}
