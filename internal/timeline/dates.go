package timeline

import "fmt"

// Date is a Regency-style display date. It carries its components, so
// chronological comparison never round-trips through the display string.
type Date struct {
	Month string
	Day   int
	Year  int

	// Abbreviated renders the date without suffix or year ("March 1").
	// The introduction event has always used this short form.
	Abbreviated bool
}

// String renders the date in Regency style, e.g. "June 14th, 1812".
func (d Date) String() string {
	if d.Abbreviated {
		return fmt.Sprintf("%s %d", d.Month, d.Day)
	}
	return fmt.Sprintf("%s %d%s, %d", d.Month, d.Day, daySuffix(d.Day), d.Year)
}

// Before reports whether d falls strictly earlier than other, comparing
// year, then calendar month position, then day. Timeline sorting does
// not use this directly: events sort season-relative via
// Season.compareDates, which places December ahead of January inside
// the winter window.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if monthOrder[d.Month] != monthOrder[other.Month] {
		return monthOrder[d.Month] < monthOrder[other.Month]
	}
	return d.Day < other.Day
}

// Compare returns -1, 0, or 1 by chronological order.
func (d Date) Compare(other Date) int {
	if d.Before(other) {
		return -1
	}
	if other.Before(d) {
		return 1
	}
	return 0
}

// daySuffix returns the English ordinal suffix for a day of the month,
// with the 11th–13th exception.
func daySuffix(day int) string {
	if v := day % 100; v >= 10 && v <= 20 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
