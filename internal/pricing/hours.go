package pricing

import (
	"errors"
	"time"

	"studiobooking/internal/domain"
)

// ErrBadClockTime reports a start/end value that is not a valid "15:04"
// clock time. This is the only failure mode of the hours ledger;
// business states (exhaustion) are reported through LedgerState.
var ErrBadClockTime = errors.New("invalid clock time")

type LedgerState string

const (
	// StateNoPackage: no package selected, the ledger is idle.
	StateNoPackage LedgerState = "no_package"
	// StateActive: package selected with hours left to consume.
	StateActive LedgerState = "active"
	// StateExhausted: every allotted hour is consumed; further date
	// entries must be rejected.
	StateExhausted LedgerState = "exhausted"
)

// HoursUsage is the ledger position after a recompute.
type HoursUsage struct {
	Used      float64     `json:"used_hours"`
	Remaining float64     `json:"remaining_hours"`
	State     LedgerState `json:"state"`
}

const clockLayout = "15:04"

// EntryHours returns the fractional hours covered by one scheduled
// slot. The date anchors the start; an end at or before the start is
// taken as crossing midnight into the next day.
func EntryHours(date time.Time, start, end string) (float64, error) {
	st, err := time.Parse(clockLayout, start)
	if err != nil {
		return 0, ErrBadClockTime
	}
	et, err := time.Parse(clockLayout, end)
	if err != nil {
		return 0, ErrBadClockTime
	}

	startAt := time.Date(date.Year(), date.Month(), date.Day(), st.Hour(), st.Minute(), 0, 0, time.UTC)
	endAt := time.Date(date.Year(), date.Month(), date.Day(), et.Hour(), et.Minute(), 0, 0, time.UTC)
	if !endAt.After(startAt) {
		endAt = endAt.Add(24 * time.Hour)
	}
	return Round2(endAt.Sub(startAt).Hours()), nil
}

// RecomputeHours rederives each entry's hours and the ledger position
// for a package allotting totalHours. Entries with unparseable times
// keep their stored hours, mirroring the edit-time value. Remaining
// hours never go negative.
func RecomputeHours(totalHours float64, entries []domain.PackageBookingDate) ([]domain.PackageBookingDate, HoursUsage) {
	out := make([]domain.PackageBookingDate, 0, len(entries))
	var used float64
	for _, e := range entries {
		if h, err := EntryHours(e.Date, e.StartTime, e.EndTime); err == nil {
			e.Hours = h
		}
		used += e.Hours
		out = append(out, e)
	}

	u := HoursUsage{Used: Round2(used)}
	if totalHours <= 0 {
		u.State = StateNoPackage
		return out, u
	}

	u.Remaining = Round2(totalHours - u.Used)
	if u.Remaining < 0 {
		u.Remaining = 0
	}
	if u.Remaining == 0 && u.Used > 0 {
		u.State = StateExhausted
	} else {
		u.State = StateActive
	}
	return out, u
}

// CanAddEntry reports whether the ledger accepts another date entry.
func CanAddEntry(u HoursUsage) bool {
	return u.State == StateActive && u.Remaining > 0
}
