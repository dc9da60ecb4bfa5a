package trips

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
	"github.com/theoremus-urban-solutions/bikeshare-stats/filters"
	"github.com/theoremus-urban-solutions/bikeshare-stats/internal/ctxlog"
)

var (
	// ErrUnknownCity is returned by Load for a city with no configured file.
	ErrUnknownCity = errors.New("no data file configured for city")
	// ErrMissingColumn is returned by Parse when a required header is absent.
	ErrMissingColumn = errors.New("missing required column")
)

const (
	colStartTime    = "Start Time"
	colEndTime      = "End Time"
	colDuration     = "Trip Duration"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colUserType     = "User Type"
	colGender       = "Gender"
	colBirthYear    = "Birth Year"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// Loader reads city files and applies a selection to them
type Loader struct {
	files map[string]string
	out   io.Writer
	pause time.Duration
}

// NewLoader creates a loader over a city to file path table. Progress notices
// are written to out.
func NewLoader(files map[string]string, out io.Writer, pause time.Duration) *Loader {
	return &Loader{files: files, out: out, pause: pause}
}

// NewLoaderFromConfig creates a loader for the cities in cfg.
func NewLoaderFromConfig(cfg config.AppConfig, out io.Writer) *Loader {
	return NewLoader(cfg.CityFiles(), out, cfg.Pause())
}

// Load reads the file for sel.City and returns it filtered by sel.Month and
// sel.Day. Diagnostics go to the logger attached to ctx.
func (l *Loader) Load(ctx context.Context, sel filters.Selection) (*Dataset, error) {
	path, ok := l.files[sel.City]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, sel.City)
	}

	fmt.Fprintln(l.out, "\nLoading the data...")
	time.Sleep(l.pause)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s data: %w", sel.City, err)
	}
	defer f.Close()

	ds, err := Parse(f, sel.City)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	filtered := ds.Filter(sel.Month, sel.Day)
	ctxlog.FromContext(ctx).Debug("dataset loaded", "city", sel.City, "path", path, "rows", ds.Len(), "filtered", filtered.Len())
	return filtered, nil
}

// Parse reads a whole city CSV from r.
func Parse(r io.Reader, city string) (*Dataset, error) {
	csvr := csv.NewReader(r)
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, errors.New("empty file")
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}

	cols := map[string]int{}
	for _, col := range []string{colStartTime, colStartStation, colEndStation, colDuration, colUserType} {
		i := idx(col)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
		cols[col] = i
	}
	endTime := idx(colEndTime)
	gender := idx(colGender)
	birthYear := idx(colBirthYear)

	ds := &Dataset{
		City:         city,
		Header:       head,
		HasGender:    gender >= 0,
		HasBirthYear: birthYear >= 0,
		Trips:        make([]Trip, 0, len(rec)-1),
	}

	for n, row := range rec[1:] {
		line := n + 2
		start, err := parseTime(row[cols[colStartTime]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, colStartTime, err)
		}
		dur, hasDur, err := parseFloat(row[cols[colDuration]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, colDuration, err)
		}

		t := Trip{
			Index:        n,
			Start:        start,
			StartStation: strings.TrimSpace(row[cols[colStartStation]]),
			EndStation:   strings.TrimSpace(row[cols[colEndStation]]),
			Duration:     dur,
			HasDuration:  hasDur,
			UserType:     strings.TrimSpace(row[cols[colUserType]]),
			Month:        int(start.Month()),
			Weekday:      start.Weekday().String(),
			Hour:         start.Hour(),
			Raw:          row,
		}
		if endTime >= 0 && strings.TrimSpace(row[endTime]) != "" {
			if t.End, err = parseTime(row[endTime]); err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", line, colEndTime, err)
			}
		}
		if gender >= 0 {
			t.Gender = strings.TrimSpace(row[gender])
		}
		if birthYear >= 0 {
			if t.BirthYear, t.HasBirthYear, err = parseYear(row[birthYear]); err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", line, colBirthYear, err)
			}
		}
		ds.Trips = append(ds.Trips, t)
	}
	return ds, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// parseFloat reports a blank or NaN cell as missing rather than an error.
func parseFloat(s string) (float64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(f) {
		return 0, false, nil
	}
	return f, true, nil
}

// parseYear accepts "1985" and the "1985.0" form that float exports produce.
func parseYear(s string) (int, bool, error) {
	f, ok, err := parseFloat(s)
	return int(f), ok, err
}
