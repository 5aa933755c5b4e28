package attendance

import (
	"time"

	"github.com/staffgate/attendance-gate-go/internal/pkg/validator"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

// Derive recomputes the cycle phase from stored state and the current
// calendar day. A last-action date equal to today means the next action is
// a check-out; anything else, including a date left over from a previous
// day, derives as needs-check-in.
func Derive(s State, today time.Time) Phase {
	if s.LastActionDate == today.Format(dateLayout) {
		return NeedsCheckOut
	}
	return NeedsCheckIn
}

// HasStaleSession reports whether the state carries an unclosed session
// from a day before today: a check-in was recorded but no check-out, and
// the day has since rolled over.
func HasStaleSession(s State, today time.Time) bool {
	if s.LastActionDate == "" || s.CheckOutTime != "" {
		return false
	}
	return s.LastActionDate != today.Format(dateLayout)
}

// Apply performs one submit transition and returns the mutated state with
// the action taken. NeedsCheckIn stamps today and the check-in time and
// clears any previous check-out; NeedsCheckOut stamps the check-out time
// and clears the last-action date so the cycle restarts.
func Apply(s State, now time.Time) (State, Action) {
	if Derive(s, now) == NeedsCheckOut {
		s.CheckOutTime = now.Format(clockLayout)
		s.LastActionDate = ""
		return s, ActionCheckOut
	}

	s.LastActionDate = now.Format(dateLayout)
	s.CheckInTime = now.Format(clockLayout)
	s.CheckOutTime = ""
	return s, ActionCheckIn
}

// AccumulateLocation appends an accepted location to the running trail.
func AccumulateLocation(previous, location string) string {
	if previous == "" {
		return location
	}
	return previous + "; " + location
}

// WorkMinutes computes the worked duration between two same-day clock
// times, less the lunch deduction. A check-out at or before the check-in
// yields zero, and the deduction never drives the result negative.
func WorkMinutes(checkIn, checkOut string, lunchDeductionMin int) (int, error) {
	in, err := validator.ParseClockTime(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := validator.ParseClockTime(checkOut)
	if err != nil {
		return 0, err
	}

	elapsed := int(out.Sub(in).Minutes())
	if elapsed <= 0 {
		return 0, nil
	}

	worked := elapsed - lunchDeductionMin
	if worked < 0 {
		return 0, nil
	}
	return worked, nil
}

// WorkHours renders worked minutes as decimal hours, e.g. 480 -> 8.00.
func WorkHours(workMinutes int) float64 {
	return float64(workMinutes) / 60.0
}
