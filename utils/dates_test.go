package utils

import (
	"testing"
	"time"
)

func TestDatePart(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2025-03-14", "2025-03-14"},
		{"2025-03-14T10:30:00.000Z", "2025-03-14"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DatePart(tc.in); got != tc.want {
			t.Errorf("DatePart(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDayKeyAndLabel(t *testing.T) {
	day := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC) // a Friday
	if got := DayKey(day); got != "2025-03-14" {
		t.Errorf("DayKey = %q", got)
	}
	if got := DayLabel(day); got != "Fri" {
		t.Errorf("DayLabel = %q", got)
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	c := FixedClock{Time: at}
	if !c.Now().Equal(at) {
		t.Fatal("fixed clock drifted")
	}
}
