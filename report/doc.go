// Package report computes and prints the four trip statistics reports in
// their fixed order: travel times, stations, trip durations and users.
//
// Each Compute function is pure and returns ok=false when the dataset has no
// trips. The Reporter prints a "Calculating" banner, the results, and the
// time the computation took.
package report
