package utils

import (
	"testing"
	"time"
)

func TestDateKeyAndDisplayDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 23, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	if got := DateKey(ts); got != "2024-03-06" {
		t.Errorf("DateKey = %q, want 2024-03-06", got)
	}
	if got := DisplayDate(ts); got != "Mar 6" {
		t.Errorf("DisplayDate = %q, want Mar 6", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-31")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.Equal(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate = %v", got)
	}
	if _, err := ParseDate("31/01/2024"); err == nil {
		t.Error("expected error for invalid layout")
	}
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	end := EndOfDay(ts)
	if DateKey(end) != "2024-05-01" {
		t.Errorf("EndOfDay crossed into %s", DateKey(end))
	}
	if !end.Add(time.Nanosecond).Equal(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("EndOfDay = %v", end)
	}
}

func TestGenerateDateRange(t *testing.T) {
	from := time.Date(2024, time.February, 27, 15, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 1, 1, 0, 0, 0, time.UTC)

	got := GenerateDateRange(from, to)
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if got := GenerateDateRange(to, from); len(got) != 0 {
		t.Errorf("inverted range = %v, want empty", got)
	}
	if got := GenerateDateRange(time.Time{}, to); len(got) != 0 {
		t.Errorf("zero from = %v, want empty", got)
	}
}
