package core

import (
	"testing"
	"time"
)

func TestTickTimerFiresOnInterval(t *testing.T) {
	timer := NewTickTimer(100 * time.Millisecond)
	frame := 16 * time.Millisecond

	ticks := 0
	for i := 0; i < 7; i++ {
		if timer.Advance(frame) {
			ticks++
		}
	}
	if ticks != 1 {
		t.Fatalf("expected one tick after 112ms, got %d", ticks)
	}
	if timer.Remaining() != timer.Interval() {
		t.Fatalf("expected counter reset to interval, got %v", timer.Remaining())
	}
}

func TestTickTimerCollapsesLongFrames(t *testing.T) {
	timer := NewTickTimer(100 * time.Millisecond)
	if !timer.Advance(time.Second) {
		t.Fatal("expected a tick for a one second frame")
	}
	if timer.Advance(0) {
		t.Fatal("overshoot must not carry into further ticks")
	}
	if timer.Remaining() != 100*time.Millisecond {
		t.Fatalf("expected full interval remaining, got %v", timer.Remaining())
	}
}

func TestTickTimerExactBoundary(t *testing.T) {
	timer := NewTickTimer(100 * time.Millisecond)
	if timer.Advance(50 * time.Millisecond) {
		t.Fatal("fired early")
	}
	if !timer.Advance(50 * time.Millisecond) {
		t.Fatal("expected tick when counter reaches exactly zero")
	}
}

func TestTickTimerResetAndNegativeDelta(t *testing.T) {
	timer := NewTickTimer(0)
	if timer.Interval() != DefaultTickInterval {
		t.Fatalf("expected default interval, got %v", timer.Interval())
	}
	timer.Advance(60 * time.Millisecond)
	timer.Reset()
	if timer.Remaining() != DefaultTickInterval {
		t.Fatalf("Reset left %v", timer.Remaining())
	}
	if timer.Advance(-time.Second) {
		t.Fatal("negative delta must not tick")
	}
	if timer.Remaining() != DefaultTickInterval {
		t.Fatalf("negative delta changed the counter to %v", timer.Remaining())
	}
}

func TestFrameClockDelta(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	clock := &FrameClock{now: func() time.Time { return now }}

	if d := clock.Delta(); d != 0 {
		t.Fatalf("first delta = %v, want 0", d)
	}
	now = base.Add(16 * time.Millisecond)
	if d := clock.Delta(); d != 16*time.Millisecond {
		t.Fatalf("delta = %v, want 16ms", d)
	}
}
