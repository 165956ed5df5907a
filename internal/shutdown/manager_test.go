package shutdown

import (
	"testing"
	"time"

	"muse/internal/logger"
)

func TestShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop())

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		m.Register(Func(func() { order = append(order, i) }))
	}

	m.Shutdown()

	want := []int{2, 1, 0}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestShutdownIdempotent(t *testing.T) {
	m := NewManager(logger.Nop())

	calls := 0
	m.Register(Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	if calls != 1 {
		t.Errorf("component shut down %d times, want 1", calls)
	}

	select {
	case <-m.Done():
	default:
		t.Error("Done() not closed after Shutdown")
	}
	if m.Context().Err() == nil {
		t.Error("Context() not canceled after Shutdown")
	}
}

func TestShutdownTimeout(t *testing.T) {
	m := NewManager(logger.Nop())
	m.SetTimeout(10 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	reached := false
	m.Register(Func(func() { reached = true }))
	m.Register(Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Shutdown blocked for %v on a stuck component", elapsed)
	}
	if !reached {
		t.Error("components after a stuck one were not shut down")
	}
}

func TestListenStopsAfterShutdown(t *testing.T) {
	m := NewManager(logger.Nop())
	m.Listen()
	m.Shutdown()

	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("Done() not closed")
	}
}
