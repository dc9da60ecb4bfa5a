package trips

import "github.com/theoremus-urban-solutions/bikeshare-stats/filters"

// Filter returns a new Dataset holding the trips that match month and day.
// filters.All disables either filter. A month outside January to June
// matches nothing. Filtering an already filtered Dataset with the same
// arguments returns the same trips.
func (d *Dataset) Filter(month, day string) *Dataset {
	out := &Dataset{
		City:         d.City,
		Header:       d.Header,
		HasGender:    d.HasGender,
		HasBirthYear: d.HasBirthYear,
	}

	wantMonth := 0
	if month != filters.All {
		n, ok := filters.MonthNumber(month)
		if !ok {
			out.Trips = []Trip{}
			return out
		}
		wantMonth = n
	}

	out.Trips = make([]Trip, 0, len(d.Trips))
	for _, t := range d.Trips {
		if wantMonth != 0 && t.Month != wantMonth {
			continue
		}
		if day != filters.All && t.Weekday != day {
			continue
		}
		out.Trips = append(out.Trips, t)
	}
	return out
}
