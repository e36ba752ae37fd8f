package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"meetngo/internal/app"
	"meetngo/internal/presence"
	"meetngo/internal/signaling"
	"meetngo/internal/store"
	"meetngo/pkg/auth"
	"meetngo/pkg/metrics"
)

// NewRouter wires up all HTTP routes, middleware, and handlers
func NewRouter(cfg app.Config, logger *slog.Logger, ep *signaling.Endpoint, db *store.Postgres, live *presence.Tracker) http.Handler {
	mw := NewMiddleware(cfg)
	authAPI := &AuthAPI{DB: db, JWT: auth.New(cfg.JWTSecret)}
	meetAPI := &MeetingsAPI{DB: db, Live: live}

	mux := http.NewServeMux()

	// Service banner
	mux.Handle("GET /{$}", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "MeetNgo API is running"})
	}))

	// Health / readiness / metrics
	mux.Handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/readyz", readiness(db, live))
	mux.Handle("/metrics", metrics.Handler())

	// WebRTC signaling endpoint
	mux.Handle("GET /ws/{code}", http.HandlerFunc(ep.ServeWS))

	// Auth endpoints
	mux.Handle("POST /api/auth/register", http.HandlerFunc(authAPI.Register))
	mux.Handle("POST /api/auth/login", http.HandlerFunc(authAPI.Login))
	mux.Handle("GET /api/auth/me", mw.Auth(http.HandlerFunc(authAPI.Me)))

	// Meetings endpoints (JWT-protected)
	mux.Handle("POST /api/meetings", mw.Auth(http.HandlerFunc(meetAPI.Create)))
	mux.Handle("POST /api/meetings/join", mw.Auth(http.HandlerFunc(meetAPI.Join)))
	mux.Handle("GET /api/meetings/{code}", mw.Auth(http.HandlerFunc(meetAPI.Get)))

	// CORS + rate limit applied globally
	return mw.Wrap(mux)
}

// readiness pings the backing stores and reports per-dependency status
func readiness(db *store.Postgres, live *presence.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{"postgres": "ok", "redis": "ok"}
		code := http.StatusOK
		if err := db.Ping(ctx); err != nil {
			status["postgres"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		if err := live.Ping(ctx); err != nil {
			status["redis"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, status)
	})
}
