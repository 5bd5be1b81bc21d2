package server

import "testing"

func TestPacerStaleFireSuppressed(t *testing.T) {
	var p pacer
	t.Cleanup(p.Cancel)

	var fired []string
	p.Schedule(func() { fired = append(fired, "first") })
	stale := p.gen
	p.Schedule(func() { fired = append(fired, "second") })

	// A callback from the superseded schedule may already be in flight
	// when the reschedule lands; firing it must be a no-op.
	p.fire(stale, func() { fired = append(fired, "stale") })
	p.fire(p.gen, func() { fired = append(fired, "live") })

	if len(fired) != 1 || fired[0] != "live" {
		t.Errorf("fired = %v, want only the live callback", fired)
	}
}

func TestPacerCancelInvalidatesInFlight(t *testing.T) {
	var p pacer

	fired := false
	p.Schedule(func() { fired = true })
	gen := p.gen
	p.Cancel()

	p.fire(gen, func() { fired = true })
	if fired {
		t.Error("callback ran after Cancel")
	}
}
