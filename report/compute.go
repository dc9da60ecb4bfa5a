package report

import (
	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
	"github.com/theoremus-urban-solutions/bikeshare-stats/trips"
)

// TimeStats holds the most frequent travel times
type TimeStats struct {
	Month   int
	Weekday string
	Hour    int
}

// Route is an ordered start/end station pair
type Route struct {
	Start string
	End   string
}

// StationStats holds the most popular stations and trip. Blank station
// names are not counted; a figure with no named stations has its flag unset.
type StationStats struct {
	Start      string
	HasStart   bool
	End        string
	HasEnd     bool
	Route      Route
	RouteCount int
	HasRoute   bool
}

// DurationStats holds trip duration aggregates over the trips that have a
// duration
type DurationStats struct {
	TotalDays   float64
	MeanMinutes float64
}

// UserStats holds the user demographics. Each optional figure carries its
// own presence flag.
type UserStats struct {
	UserTypes []stats.Count[string]

	Genders   []stats.Count[string]
	HasGender bool

	EarliestBirthYear    int
	HasEarliestBirthYear bool
	LatestBirthYear      int
	HasLatestBirthYear   bool
	CommonBirthYear      int
	HasCommonBirthYear   bool
}

// ComputeTimeStats returns the most common month, weekday and start hour.
func ComputeTimeStats(ds *trips.Dataset) (TimeStats, bool) {
	months := make([]int, len(ds.Trips))
	days := make([]string, len(ds.Trips))
	hours := make([]int, len(ds.Trips))
	for i, t := range ds.Trips {
		months[i], days[i], hours[i] = t.Month, t.Weekday, t.Hour
	}
	var ts TimeStats
	var ok bool
	if ts.Month, ok = stats.Mode(months); !ok {
		return TimeStats{}, false
	}
	ts.Weekday, _ = stats.Mode(days)
	ts.Hour, _ = stats.Mode(hours)
	return ts, true
}

// ComputeStationStats returns the most common start station, end station
// and start/end route. ok is false only when ds has no trips.
func ComputeStationStats(ds *trips.Dataset) (StationStats, bool) {
	if ds.Len() == 0 {
		return StationStats{}, false
	}
	var starts, ends []string
	var routes []Route
	for _, t := range ds.Trips {
		if t.StartStation != "" {
			starts = append(starts, t.StartStation)
		}
		if t.EndStation != "" {
			ends = append(ends, t.EndStation)
		}
		if t.StartStation != "" && t.EndStation != "" {
			routes = append(routes, Route{Start: t.StartStation, End: t.EndStation})
		}
	}
	var ss StationStats
	ss.Start, ss.HasStart = stats.Mode(starts)
	ss.End, ss.HasEnd = stats.Mode(ends)
	if rc := stats.ValueCounts(routes); len(rc) > 0 {
		ss.Route, ss.RouteCount, ss.HasRoute = rc[0].Value, rc[0].N, true
	}
	return ss, true
}

// ComputeDurationStats returns the total duration in days and the mean in
// minutes, both unrounded. Trips without a duration are skipped; ok is false
// when none has one.
func ComputeDurationStats(ds *trips.Dataset) (DurationStats, bool) {
	secs := make([]float64, 0, len(ds.Trips))
	for _, t := range ds.Trips {
		if t.HasDuration {
			secs = append(secs, t.Duration)
		}
	}
	mean, ok := stats.Mean(secs)
	if !ok {
		return DurationStats{}, false
	}
	return DurationStats{
		TotalDays:   stats.Sum(secs) / 86400,
		MeanMinutes: mean / 60,
	}, true
}

// ComputeUserStats never fails: absent or empty optional columns only clear
// the matching presence flags.
func ComputeUserStats(ds *trips.Dataset) UserStats {
	us := UserStats{UserTypes: stats.ValueCounts(userTypes(ds))}
	us.Genders, us.HasGender = genderCounts(ds)
	years := birthYears(ds)
	us.EarliestBirthYear, _, us.HasEarliestBirthYear = stats.MinMax(years)
	_, us.LatestBirthYear, us.HasLatestBirthYear = stats.MinMax(years)
	us.CommonBirthYear, us.HasCommonBirthYear = stats.Mode(years)
	return us
}

func userTypes(ds *trips.Dataset) []string {
	out := make([]string, 0, len(ds.Trips))
	for _, t := range ds.Trips {
		if t.UserType != "" {
			out = append(out, t.UserType)
		}
	}
	return out
}

func genderCounts(ds *trips.Dataset) ([]stats.Count[string], bool) {
	if !ds.HasGender {
		return nil, false
	}
	g := make([]string, 0, len(ds.Trips))
	for _, t := range ds.Trips {
		if t.Gender != "" {
			g = append(g, t.Gender)
		}
	}
	counts := stats.ValueCounts(g)
	return counts, len(counts) > 0
}

func birthYears(ds *trips.Dataset) []int {
	if !ds.HasBirthYear {
		return nil
	}
	out := make([]int, 0, len(ds.Trips))
	for _, t := range ds.Trips {
		if t.HasBirthYear {
			out = append(out, t.BirthYear)
		}
	}
	return out
}
