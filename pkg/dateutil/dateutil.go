// Package dateutil provides the calendar arithmetic shared by every duration
// computation in the engine. All quarter counting routes through
// QuartersBetween so rounding stays consistent (floor, never round).
package dateutil

import "time"

// Age returns the age in whole years at the given date, using exact
// year/month/day comparison.
func Age(birthDate, atDate time.Time) int {
	if birthDate.IsZero() || atDate.IsZero() {
		return 0
	}
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// MonthsBetween returns the number of whole months from start to end,
// day-of-month aware. It never returns a negative count.
func MonthsBetween(start, end time.Time) int {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// QuartersBetween returns the number of whole quarters (3-month blocks)
// elapsed from start to end. Zero when end is not after start.
func QuartersBetween(start, end time.Time) int {
	return MonthsBetween(start, end) / 3
}

// AddYearsMonths returns the date shifted forward by the given number of
// years and months.
func AddYearsMonths(d time.Time, years, months int) time.Time {
	return d.AddDate(years, months, 0)
}

// LaterOf returns the later of two dates.
func LaterOf(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
