package types

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != "2026-03-15" {
		t.Errorf("expected 2026-03-15, got %s", d)
	}

	for _, bad := range []string{"2026-3-15", "15-03-2026", "2026-03-32", "not-a-date", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestDateAddDays(t *testing.T) {
	d := Date("2026-02-28")
	if got := d.AddDays(1); got != "2026-03-01" {
		t.Errorf("expected 2026-03-01, got %s", got)
	}
	if got := d.AddDays(-28); got != "2026-01-31" {
		t.Errorf("expected 2026-01-31, got %s", got)
	}
	if got := d.AddDays(0); got != d {
		t.Errorf("expected %s, got %s", d, got)
	}
}

func TestDateOrdering(t *testing.T) {
	// ISO dates must order lexicographically; window code relies on it.
	if !(Date("2026-01-09") < Date("2026-01-10")) {
		t.Error("expected 2026-01-09 < 2026-01-10")
	}
	if !(Date("2025-12-31") < Date("2026-01-01")) {
		t.Error("expected year boundary to order correctly")
	}
}

func TestDateOf(t *testing.T) {
	// 23:30 in UTC+2 is 21:30 UTC, still the same day.
	loc := time.FixedZone("plus2", 2*60*60)
	ts := time.Date(2026, 3, 15, 23, 30, 0, 0, loc)
	if got := DateOf(ts); got != "2026-03-15" {
		t.Errorf("expected 2026-03-15, got %s", got)
	}

	// 01:00 in UTC+2 is 23:00 UTC the previous day.
	ts = time.Date(2026, 3, 15, 1, 0, 0, 0, loc)
	if got := DateOf(ts); got != "2026-03-14" {
		t.Errorf("expected 2026-03-14, got %s", got)
	}
}

func TestWorkoutRecordDate(t *testing.T) {
	w := WorkoutRecord{StartedAt: time.Date(2026, 5, 1, 18, 45, 0, 0, time.UTC)}
	if got := w.Date(); got != "2026-05-01" {
		t.Errorf("expected 2026-05-01, got %s", got)
	}
}
