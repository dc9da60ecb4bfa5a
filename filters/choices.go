package filters

import "slices"

// All disables the month or day filter.
const All = "All"

var (
	cities = [...]string{"Chicago", "New York City", "Washington"}
	months = [...]string{"January", "February", "March", "April", "May", "June"}
	days   = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
)

// Cities returns the supported city names.
func Cities() []string { return slices.Clone(cities[:]) }

// Months returns the supported month names, January through June.
func Months() []string { return slices.Clone(months[:]) }

// Days returns the weekday names, Monday first.
func Days() []string { return slices.Clone(days[:]) }

// MonthChoices returns Months followed by All.
func MonthChoices() []string { return append(Months(), All) }

// DayChoices returns Days followed by All.
func DayChoices() []string { return append(Days(), All) }

// IsCity reports whether s is a supported city.
func IsCity(s string) bool { return slices.Contains(cities[:], s) }

// IsMonthChoice reports whether s is a supported month or All.
func IsMonthChoice(s string) bool { return s == All || slices.Contains(months[:], s) }

// IsDayChoice reports whether s is a weekday name or All.
func IsDayChoice(s string) bool { return s == All || slices.Contains(days[:], s) }

// MonthNumber returns the 1-based calendar month for a supported month name.
func MonthNumber(name string) (int, bool) {
	i := slices.Index(months[:], name)
	if i < 0 {
		return 0, false
	}
	return i + 1, true
}

// MonthName returns the name for a calendar month number, or "" when it is
// outside 1..12.
func MonthName(n int) string {
	if n < 1 || n > 12 {
		return ""
	}
	return monthNames[n-1]
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
