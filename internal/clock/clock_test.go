package clock

import (
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	c := NewFixed(start)

	if !c.Now().Equal(start) {
		t.Fatalf("expected %v, got %v", start, c.Now())
	}

	c.Advance(25 * time.Hour)
	if !c.Now().Equal(start.Add(25 * time.Hour)) {
		t.Fatalf("expected advance by 25h, got %v", c.Now())
	}

	other := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	c.Set(other)
	if !c.Now().Equal(other) {
		t.Fatalf("expected %v after Set, got %v", other, c.Now())
	}
}

func TestSystem(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Fatalf("system clock out of bounds: %v", got)
	}
}
