package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-stats/filters"
	"github.com/theoremus-urban-solutions/bikeshare-stats/internal/prompt"
	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
	"github.com/theoremus-urban-solutions/bikeshare-stats/trips"
)

const noTrips = "No trips match the selected filters."

// Reporter prints reports to a console stream
type Reporter struct {
	out   io.Writer
	pause time.Duration
}

// NewReporter creates a reporter writing to out. pause is slept before each
// calculation block.
func NewReporter(out io.Writer, pause time.Duration) *Reporter {
	return &Reporter{out: out, pause: pause}
}

// PrintAll prints the four reports in order.
func (r *Reporter) PrintAll(ds *trips.Dataset) {
	r.PrintTimes(ds)
	r.PrintStations(ds)
	r.PrintDurations(ds)
	r.PrintUsers(ds)
}

// PrintTimes prints the most common month, day and start hour.
func (r *Reporter) PrintTimes(ds *trips.Dataset) {
	r.section("The Most Frequent Times of Travel", func(w io.Writer) {
		ts, ok := ComputeTimeStats(ds)
		if !ok {
			line(w, noTrips)
			return
		}
		item(w, "Most common month", filters.MonthName(ts.Month))
		item(w, "Most common day", ts.Weekday)
		item(w, "Most common start hour", ts.Hour)
	})
}

// PrintStations prints the most common stations and trip.
func (r *Reporter) PrintStations(ds *trips.Dataset) {
	r.section("The Most Popular Stations and Trip", func(w io.Writer) {
		ss, ok := ComputeStationStats(ds)
		if !ok {
			line(w, noTrips)
			return
		}
		if ss.HasStart {
			item(w, "Most common start station", ss.Start)
		} else {
			line(w, "No start station data available.")
		}
		if ss.HasEnd {
			item(w, "Most common end station", ss.End)
		} else {
			line(w, "No end station data available.")
		}
		if ss.HasRoute {
			item(w, "Most common trip", fmt.Sprintf("%s to %s (%s)", ss.Route.Start, ss.Route.End, plural(ss.RouteCount, "trip")))
		} else {
			line(w, "No trip data available.")
		}
	})
}

// PrintDurations prints the total and average trip duration.
func (r *Reporter) PrintDurations(ds *trips.Dataset) {
	r.section("Trip Duration", func(w io.Writer) {
		if ds.Len() == 0 {
			line(w, noTrips)
			return
		}
		d, ok := ComputeDurationStats(ds)
		if !ok {
			line(w, "No trip duration data available.")
			return
		}
		item(w, "Total travel time", formatFloat(d.TotalDays)+" days")
		item(w, "Average trip duration", formatFloat(d.MeanMinutes)+" minutes")
	})
}

// PrintUsers prints user type, gender and birth year figures.
func (r *Reporter) PrintUsers(ds *trips.Dataset) {
	r.section("User Stats", func(w io.Writer) {
		us := ComputeUserStats(ds)
		if len(us.UserTypes) > 0 {
			table(w, "User types", us.UserTypes)
		} else {
			line(w, "No user type data available.")
		}

		if us.HasGender {
			table(w, "Gender", us.Genders)
		} else {
			line(w, "No gender data available.")
		}

		const noYears = "No birth year data available."
		if us.HasEarliestBirthYear {
			item(w, "Earliest birth year", us.EarliestBirthYear)
		} else {
			line(w, noYears)
		}
		if us.HasLatestBirthYear {
			item(w, "Most recent birth year", us.LatestBirthYear)
		} else {
			line(w, noYears)
		}
		if us.HasCommonBirthYear {
			item(w, "Most common birth year", us.CommonBirthYear)
		} else {
			line(w, noYears)
		}
	})
}

func (r *Reporter) section(title string, body func(w io.Writer)) {
	fmt.Fprintf(r.out, "\nCalculating %s...\n", title)
	time.Sleep(r.pause)
	start := time.Now()
	body(r.out)
	fmt.Fprintf(r.out, "\nThis took %s seconds.\n%s\n", formatFloat(time.Since(start).Seconds()), prompt.Separator)
}

func item(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "\n%s: %v\n%s\n", label, value, prompt.Separator)
}

func line(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s\n%s\n", msg, prompt.Separator)
}

func table(w io.Writer, label string, counts []stats.Count[string]) {
	fmt.Fprintf(w, "\n%s:\n", label)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Value, c.N)
	}
	tw.Flush()
	fmt.Fprintln(w, prompt.Separator)
}

// plural formats n with the singular noun for 1 and an "s" suffix otherwise.
func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
