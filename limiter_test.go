package pageforge

import (
	"testing"
	"time"
)

func TestRateLimiterBlocksAfterMax(t *testing.T) {
	l := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("attempt %d blocked, want allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("fourth attempt allowed, want blocked")
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	l := NewRateLimiter(2, 50*time.Millisecond)

	l.Record("1.2.3.4")
	l.Record("1.2.3.4")
	if l.Check("1.2.3.4") {
		t.Fatal("expected blocked inside window")
	}

	time.Sleep(60 * time.Millisecond)

	if !l.Check("1.2.3.4") {
		t.Error("expected allowed after window expired")
	}
}

func TestRateLimiterIsPerIP(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)

	if !l.Allow("1.1.1.1") {
		t.Fatal("first IP blocked on first attempt")
	}
	if l.Allow("1.1.1.1") {
		t.Error("first IP allowed over limit")
	}
	if !l.Allow("2.2.2.2") {
		t.Error("second IP blocked by first IP's attempts")
	}
}
