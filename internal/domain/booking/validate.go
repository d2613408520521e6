package booking

import (
	"github.com/lumina-beauty/booking-api/internal/httperr"
)

// ===============================
// Eligibility validation
// ===============================

// Hours are the salon's booking bounds, "15:04" strings. They come from
// configuration (defaults 07:00-22:00), never from literals at call sites.
type Hours struct {
	Open  string
	Close string
}

// CheckWindow enforces the business-hours bound on a [start, end) window.
func (h Hours) CheckWindow(start, end string) error {
	if start < h.Open || end > h.Close {
		return httperr.ErrBusinessf(
			httperr.CodeOutOfHours,
			"bookings are only allowed between %s and %s, requested %s-%s",
			h.Open, h.Close, start, end,
		)
	}
	return nil
}

// Overlaps is the half-open interval test: [aStart, aEnd) and [bStart, bEnd)
// intersect iff aStart < bEnd && aEnd > bStart. Touching endpoints do not
// overlap, so a 10:00-11:00 booking composes with an 11:00-12:00 one.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
