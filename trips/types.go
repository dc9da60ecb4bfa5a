package trips

import "time"

// Trip is one parsed row of a city file
type Trip struct {
	Index        int // zero-based data row in the source file
	Start        time.Time
	End          time.Time // zero when the file has no End Time
	StartStation string
	EndStation   string
	Duration     float64 // seconds, zero when HasDuration is false
	HasDuration  bool
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool

	Month   int
	Weekday string
	Hour    int

	Raw []string
}

// Dataset is the trip collection for one city
type Dataset struct {
	City         string
	Header       []string
	HasGender    bool
	HasBirthYear bool
	Trips        []Trip
}

// Len returns the number of trips.
func (d *Dataset) Len() int { return len(d.Trips) }
