package kv

import (
	"testing"
	"time"
)

func TestDelayRangeFixedWindow(t *testing.T) {
	d := DelayRange{MinMs: 10, MaxMs: 10}
	if got := d.Sample(); got != 10*time.Millisecond {
		t.Fatalf("sample = %v, want 10ms", got)
	}
}

func TestDelayRangeWithinBounds(t *testing.T) {
	d := DelayRange{MinMs: 5, MaxMs: 15}
	for i := 0; i < 50; i++ {
		got := d.Sample()
		if got < 5*time.Millisecond || got > 15*time.Millisecond {
			t.Fatalf("sample %v out of [5,15]ms", got)
		}
	}
}

func TestDelayRangeInvertedBoundsFallsBackToMin(t *testing.T) {
	d := DelayRange{MinMs: 20, MaxMs: 5}
	if got := d.Sample(); got != 20*time.Millisecond {
		t.Fatalf("sample = %v, want 20ms", got)
	}
}
