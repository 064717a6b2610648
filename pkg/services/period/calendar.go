package period

import "time"

// AddOneMonth returns the same day-of-month in the following month, clamped
// to that month's last valid day (Jan 31 -> Feb 28, or Feb 29 in leap
// years). December rolls over to January of the next year.
func AddOneMonth(d time.Time) time.Time {
	year, month := d.Year(), d.Month()
	if month == time.December {
		year++
		month = time.January
	} else {
		month++
	}

	day := d.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}

// daysIn returns the number of days in the given month. Day 0 of the next
// month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
