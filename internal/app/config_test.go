package app

import (
	"reflect"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want dev", cfg.Env)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.PGMaxConn != 10 {
		t.Errorf("PGMaxConn = %d, want 10", cfg.PGMaxConn)
	}
	if cfg.MaxRoomPeers != 100 {
		t.Errorf("MaxRoomPeers = %d, want 100", cfg.MaxRoomPeers)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("WS_MAX_ROOM_PEERS", "8")
	t.Setenv("CORS_ALLOW", "https://a.example, https://b.example ,")

	cfg := LoadConfig()

	if cfg.Env != "prod" {
		t.Errorf("Env = %q, want prod", cfg.Env)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q, want :9999", cfg.HTTPAddr)
	}
	if cfg.MaxRoomPeers != 8 {
		t.Errorf("MaxRoomPeers = %d, want 8", cfg.MaxRoomPeers)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSAllow, want) {
		t.Errorf("CORSAllow = %v, want %v", cfg.CORSAllow, want)
	}
}

func TestGetEnvIntBadValue(t *testing.T) {
	t.Setenv("PG_MAX_CONN", "not-a-number")
	if got := getEnvInt("PG_MAX_CONN", 7); got != 7 {
		t.Errorf("getEnvInt = %d, want fallback 7", got)
	}
}
