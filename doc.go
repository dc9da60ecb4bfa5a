// Package bikeshare runs the interactive bikeshare statistics session.
//
// One iteration collects a city/month/day selection, loads and filters the
// city's trips, prints the time, station, duration and user reports, offers
// the raw data browser, and asks whether to start over.
package bikeshare
