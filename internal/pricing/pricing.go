package pricing

import "time"

// BillableHours rounds the elapsed duration between start and end up to
// whole hours, with a minimum charge of one hour. Inverted or zero-length
// ranges are not rejected here; they fall through to the one-hour floor.
func BillableHours(start, end time.Time) int {
	d := end.Sub(start)
	hours := int(d / time.Hour)
	if d%time.Hour > 0 {
		hours++
	}
	if hours < 1 {
		hours = 1
	}
	return hours
}

// Cost returns the total charge for the window at the given hourly rate.
// The booking form preview and the persisted charge both go through this
// function, so the two always agree.
func Cost(start, end time.Time, hourlyRate float64) float64 {
	return float64(BillableHours(start, end)) * hourlyRate
}
