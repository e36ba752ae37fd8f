package store

import (
	"strings"
	"testing"
)

func TestNewMeetingCodeShape(t *testing.T) {
	code, err := NewMeetingCode()
	if err != nil {
		t.Fatalf("NewMeetingCode: %v", err)
	}
	if len(code) != codeLength {
		t.Fatalf("len = %d, want %d", len(code), codeLength)
	}
	for _, r := range code {
		if !strings.ContainsRune(codeAlphabet, r) {
			t.Fatalf("code %q contains %q outside alphabet", code, r)
		}
	}
}

func TestNewMeetingCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		code, err := NewMeetingCode()
		if err != nil {
			t.Fatalf("NewMeetingCode: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q after %d draws", code, i)
		}
		seen[code] = true
	}
}

func TestNormEmail(t *testing.T) {
	if got := normEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Errorf("normEmail = %q", got)
	}
}
