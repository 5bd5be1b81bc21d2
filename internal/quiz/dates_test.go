package quiz

import (
	"testing"
	"time"
)

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-08-30")
	if err != nil {
		t.Fatalf("parsing date: %v", err)
	}
	if got := d.String(); got != "2026-08-30" {
		t.Errorf("String() = %q", got)
	}
}

func TestDateAddDaysNormalizes(t *testing.T) {
	d := Date{Year: 2026, Month: time.December, Day: 31}
	next := d.AddDays(1)
	want := Date{Year: 2027, Month: time.January, Day: 1}
	if next != want {
		t.Errorf("AddDays(1) = %v, want %v", next, want)
	}
}

func TestIsNextDay(t *testing.T) {
	d := Date{Year: 2026, Month: time.February, Day: 28}
	if !d.IsNextDay(Date{Year: 2026, Month: time.March, Day: 1}) {
		t.Error("Feb 28 2026 -> Mar 1 2026 should be next day (non-leap year)")
	}
	if d.IsNextDay(d) {
		t.Error("a day is not its own next day")
	}
}
