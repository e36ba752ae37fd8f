package signaling

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"
)

// Conn wraps a websocket for one signaling session. It is owned by the
// endpoint that accepted it; the registry only tracks it for routing.
type Conn struct {
	id string
	ws *websocket.Conn

	out    chan []byte
	closed chan struct{}
	once   sync.Once
}

// Accept upgrades HTTP to websocket (allow all origins)
func Accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
}

// NewConn wraps an accepted websocket connection
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		id:     newConnID(),
		ws:     ws,
		out:    make(chan []byte, 256),
		closed: make(chan struct{}),
	}
}

// ID is a short random handle for logs and presence entries
func (c *Conn) ID() string { return c.id }

// Send enqueues one outbound frame without blocking. Frames enqueued by a
// single sender are written to the wire in enqueue order.
func (c *Conn) Send(payload []byte) error {
	select {
	case <-c.closed:
		return ErrPeerClosed
	default:
	}
	select {
	case c.out <- payload:
		return nil
	default:
		return ErrPeerBusy
	}
}

// Read blocks until it receives a text/binary message
// Returns false if connection is closed
func (c *Conn) Read(ctx context.Context) ([]byte, bool) {
	for {
		typ, data, err := c.ws.Read(ctx)
		if err != nil {
			return nil, false
		}
		if typ == websocket.MessageText || typ == websocket.MessageBinary {
			return data, true
		}
	}
}

// WriteLoop sends outbound frames + periodic pings
// Exits when ctx is cancelled or the connection closes
func (c *Conn) WriteLoop(ctx context.Context) {
	t := time.NewTicker(20 * time.Second)
	defer t.Stop()

	for {
		select {
		case b := <-c.out:
			if err := c.ws.Write(ctx, websocket.MessageText, b); err != nil {
				return
			}
		case <-t.C:
			if err := c.ws.Ping(ctx); err != nil {
				return
			}
		case <-c.closed:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Close closes the WS connection normally. Safe to call more than once.
func (c *Conn) Close() error {
	var err error
	c.once.Do(func() {
		close(c.closed)
		err = c.ws.Close(websocket.StatusNormalClosure, "bye")
	})
	return err
}

func newConnID() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
