package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func doReq(t *testing.T, h http.Handler, remote string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestLimiterBlocksAfterMax(t *testing.T) {
	lim := New(2, time.Minute)
	h := lim.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if code := doReq(t, h, "1.2.3.4:1111"); code != http.StatusOK {
		t.Fatalf("req 1 = %d, want 200", code)
	}
	if code := doReq(t, h, "1.2.3.4:1111"); code != http.StatusOK {
		t.Fatalf("req 2 = %d, want 200", code)
	}
	if code := doReq(t, h, "1.2.3.4:1111"); code != http.StatusTooManyRequests {
		t.Fatalf("req 3 = %d, want 429", code)
	}
}

func TestLimiterIsolatesIPs(t *testing.T) {
	lim := New(1, time.Minute)
	h := lim.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if code := doReq(t, h, "1.2.3.4:1111"); code != http.StatusOK {
		t.Fatalf("ip A = %d, want 200", code)
	}
	if code := doReq(t, h, "5.6.7.8:2222"); code != http.StatusOK {
		t.Fatalf("ip B = %d, want 200", code)
	}
	if code := doReq(t, h, "1.2.3.4:3333"); code != http.StatusTooManyRequests {
		t.Fatalf("ip A again = %d, want 429", code)
	}
}
