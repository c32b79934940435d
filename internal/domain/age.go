package domain

import "time"

// Age is a calendar age in whole years, months and days.
type Age struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports whether the age is exactly zero.
func (a Age) IsZero() bool { return a == Age{} }

// AgeBetween computes the calendar age from start to current. Negative day
// counts borrow from the length of the month preceding current; negative
// month counts borrow a year.
func AgeBetween(start, current time.Time) Age {
	years := current.Year() - start.Year()
	months := int(current.Month()) - int(start.Month())
	days := current.Day() - start.Day()

	if days < 0 {
		months--
		prevYear, prevMonth := current.Year(), current.Month()-1
		if current.Month() == time.January {
			prevYear, prevMonth = current.Year()-1, time.December
		}
		days += daysInMonth(prevYear, prevMonth)
	}
	if months < 0 {
		years--
		months += 12
	}

	return Age{Years: years, Months: months, Days: days}
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
