package booking

import (
	"testing"

	"github.com/lumina-beauty/booking-api/internal/httperr"
)

func TestCheckWindow(t *testing.T) {
	hours := Hours{Open: "07:00", Close: "22:00"}

	cases := []struct {
		start, end string
		ok         bool
	}{
		{"07:00", "08:00", true},
		{"21:00", "22:00", true},
		{"10:00", "10:45", true},
		{"06:30", "07:30", false},
		{"06:00", "06:45", false},
		{"21:30", "22:15", false},
		{"22:00", "23:00", false},
	}

	for _, tc := range cases {
		err := hours.CheckWindow(tc.start, tc.end)
		if tc.ok && err != nil {
			t.Errorf("CheckWindow(%s, %s): unexpected error %v", tc.start, tc.end, err)
		}
		if !tc.ok {
			if !httperr.IsBusiness(err, httperr.CodeOutOfHours) {
				t.Errorf("CheckWindow(%s, %s): want out_of_hours, got %v", tc.start, tc.end, err)
			}
		}
	}
}

func TestOverlapsIsHalfOpen(t *testing.T) {
	cases := []struct {
		aS, aE, bS, bE string
		want           bool
	}{
		{"10:00", "11:00", "10:30", "11:30", true},
		{"10:00", "11:00", "09:30", "10:30", true},
		{"10:00", "11:00", "10:15", "10:45", true},
		{"10:00", "11:00", "09:00", "12:00", true},
		{"10:00", "11:00", "10:00", "11:00", true},

		// shared boundary: back-to-back windows compose
		{"10:00", "11:00", "11:00", "12:00", false},
		{"11:00", "12:00", "10:00", "11:00", false},

		{"10:00", "11:00", "12:00", "13:00", false},
		{"10:00", "11:00", "08:00", "09:00", false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.aS, tc.aE, tc.bS, tc.bE); got != tc.want {
			t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
				tc.aS, tc.aE, tc.bS, tc.bE, got, tc.want)
		}
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	pairs := [][4]string{
		{"10:00", "11:00", "10:30", "11:30"},
		{"10:00", "11:00", "11:00", "12:00"},
		{"09:00", "12:00", "10:00", "10:30"},
	}

	for _, p := range pairs {
		ab := Overlaps(p[0], p[1], p[2], p[3])
		ba := Overlaps(p[2], p[3], p[0], p[1])
		if ab != ba {
			t.Errorf("Overlaps not symmetric for %v: %v vs %v", p, ab, ba)
		}
	}
}
