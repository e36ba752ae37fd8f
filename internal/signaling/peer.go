package signaling

import "errors"

var (
	// ErrPeerClosed means the peer's connection is shutting down.
	ErrPeerClosed = errors.New("peer closed")
	// ErrPeerBusy means the peer's outbound queue is full.
	ErrPeerBusy = errors.New("peer send queue full")
)

// Peer is one relay participant. Send must not block: a peer that cannot
// take the payload right away returns an error and the payload is dropped
// for that recipient only.
type Peer interface {
	Send(payload []byte) error
}
