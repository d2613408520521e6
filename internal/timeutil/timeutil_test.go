package timeutil

import "testing"

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-03-15"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}

	for _, bad := range []string{"15/03/2026", "2026-3-5", "2026-13-01", "not-a-date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestParseClock(t *testing.T) {
	if got, err := ParseClock("09:30"); err != nil || got != "09:30" {
		t.Fatalf("ParseClock(09:30) = %q, %v", got, err)
	}

	for _, bad := range []string{"9h30", "25:00", "10:70", ""} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q): expected error", bad)
		}
	}
}

func TestAddToClock(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
		want    string
	}{
		{"09:00", 45, "09:45"},
		{"09:30", 45, "10:15"},
		{"10:00", 60, "11:00"},
		{"23:00", 59, "23:59"},
		{"00:00", 0, "00:00"},
	}

	for _, tc := range cases {
		got, err := AddToClock(tc.clock, tc.minutes)
		if err != nil {
			t.Errorf("AddToClock(%s, %d): %v", tc.clock, tc.minutes, err)
			continue
		}
		if got != tc.want {
			t.Errorf("AddToClock(%s, %d) = %s, want %s", tc.clock, tc.minutes, got, tc.want)
		}
	}
}

func TestAddToClockRejectsMidnightCross(t *testing.T) {
	if _, err := AddToClock("23:30", 30); err == nil {
		t.Error("23:30 + 30min reaches midnight, expected error")
	}
	if _, err := AddToClock("23:00", 90); err == nil {
		t.Error("23:00 + 90min crosses midnight, expected error")
	}
}

func TestClockStringsOrderLexically(t *testing.T) {
	// The whole system leans on this: zero-padded clocks compare correctly
	// as plain strings.
	if !("09:00" < "10:00" && "10:00" < "10:30" && "07:00" < "22:00") {
		t.Fatal("lexical order broken for zero-padded clocks")
	}
}
