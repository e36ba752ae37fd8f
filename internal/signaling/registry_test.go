package signaling

import (
	"fmt"
	"sync"
	"testing"
)

func TestJoinLeaveCounts(t *testing.T) {
	reg := NewRegistry()
	a, b := &fakePeer{}, &fakePeer{}

	reg.Join("r1", a)
	reg.Join("r1", b)
	if got := reg.Count("r1"); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}

	reg.Leave("r1", a)
	if got := reg.Count("r1"); got != 1 {
		t.Fatalf("Count after leave = %d, want 1", got)
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	a := &fakePeer{}

	reg.Join("r1", a)
	reg.Join("r1", a)
	if got := reg.Count("r1"); got != 1 {
		t.Fatalf("Count = %d, want 1 (no duplicate membership)", got)
	}
}

func TestRoomDeletedWhenEmpty(t *testing.T) {
	reg := NewRegistry()
	a := &fakePeer{}

	reg.Join("r1", a)
	if !reg.Exists("r1") {
		t.Fatal("room should exist after join")
	}

	reg.Leave("r1", a)
	if reg.Exists("r1") {
		t.Fatal("room should be gone after last leave")
	}
	if got := reg.Count("r1"); got != 0 {
		t.Fatalf("Count = %d, want 0", got)
	}
}

func TestLeaveUnknownIsNoop(t *testing.T) {
	reg := NewRegistry()
	a := &fakePeer{}

	reg.Leave("nope", a) // absent room
	reg.Join("r1", a)
	reg.Leave("r1", &fakePeer{}) // absent peer
	if got := reg.Count("r1"); got != 1 {
		t.Fatalf("Count = %d, want 1", got)
	}
}

func TestMembersIsSnapshot(t *testing.T) {
	reg := NewRegistry()
	a, b := &fakePeer{}, &fakePeer{}
	reg.Join("r1", a)
	reg.Join("r1", b)

	snap := reg.Members("r1")
	reg.Leave("r1", a)
	reg.Leave("r1", b)
	if len(snap) != 2 {
		t.Fatalf("snapshot len = %d, want 2", len(snap))
	}
}

func TestRoomsAreIndependent(t *testing.T) {
	reg := NewRegistry()
	a, b := &fakePeer{}, &fakePeer{}
	reg.Join("r1", a)
	reg.Join("r2", b)

	reg.Leave("r1", a)
	if !reg.Exists("r2") {
		t.Fatal("emptying r1 must not touch r2")
	}
	if got := reg.Count("r2"); got != 1 {
		t.Fatalf("r2 count = %d, want 1", got)
	}
}

func TestConcurrentChurn(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			room := fmt.Sprintf("r%d", i%5)
			p := &fakePeer{}
			for j := 0; j < 100; j++ {
				reg.Join(room, p)
				reg.Members(room)
				reg.Leave(room, p)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		room := fmt.Sprintf("r%d", i)
		if reg.Exists(room) {
			t.Errorf("room %s leaked after all peers left", room)
		}
	}
}
