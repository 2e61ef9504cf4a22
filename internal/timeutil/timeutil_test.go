package timeutil

import (
	"testing"
	"time"
)

func TestParseAndFormatRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-10-12")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got := FormatDate(parsed); got != "2025-10-12" {
		t.Fatalf("round trip produced %q", got)
	}
}

func TestParseDateRejectsOtherFormats(t *testing.T) {
	for _, raw := range []string{"10/12/2025", "2025-13-01", "yesterday", ""} {
		if _, err := ParseDate(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("loading location: %v", err)
	}

	in := time.Date(2025, 10, 12, 23, 45, 12, 999, loc)
	got := StartOfDay(in)

	want := time.Date(2025, 10, 12, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Fatalf("expected location preserved, got %v", got.Location())
	}
}
