package presence

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"meetngo/internal/app"
)

// Keys expire eventually so a crashed process cannot pin stale members
// forever.
const presenceTTL = 24 * time.Hour

// Tracker records which signaling connections are live in each meeting,
// backed by a redis set per meeting code. Everything here is best-effort:
// failures are logged and never surface to the relay.
type Tracker struct {
	rdb *redis.Client
	log *slog.Logger
}

// New connects to redis and verifies connectivity
func New(ctx context.Context, cfg app.Config, log *slog.Logger) (*Tracker, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Tracker{rdb: rdb, log: log}, nil
}

// Track marks connID live in the meeting's presence set
func (t *Tracker) Track(ctx context.Context, room, connID string) {
	k := key(room)
	if err := t.rdb.SAdd(ctx, k, connID).Err(); err != nil {
		t.log.Warn("presence.track", "room", room, "err", err)
		return
	}
	_ = t.rdb.Expire(ctx, k, presenceTTL).Err()
}

// Untrack removes connID from the meeting's presence set
func (t *Tracker) Untrack(ctx context.Context, room, connID string) {
	if err := t.rdb.SRem(ctx, key(room), connID).Err(); err != nil {
		t.log.Warn("presence.untrack", "room", room, "err", err)
	}
}

// Live returns the number of live signaling connections in the meeting
func (t *Tracker) Live(ctx context.Context, room string) (int64, error) {
	return t.rdb.SCard(ctx, key(room)).Result()
}

// Ping verifies redis is reachable (readiness checks)
func (t *Tracker) Ping(ctx context.Context) error {
	return t.rdb.Ping(ctx).Err()
}

// Close shuts down the redis connection
func (t *Tracker) Close() { _ = t.rdb.Close() }

// key namespaces presence sets by meeting code
func key(room string) string { return "meeting:" + room + ":peers" }
