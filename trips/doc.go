/*
Package trips loads bikeshare trip records from a city CSV file and narrows
them by month and weekday.

# Columns

Headers are matched case-insensitively. Required columns:

  - Start Time (2006-01-02 15:04:05, fractional seconds and RFC 3339 accepted)
  - Start Station, End Station
  - Trip Duration (seconds)
  - User Type

Optional columns are Gender, Birth Year and End Time. A blank cell in any
column other than Start Time is a missing value: a blank Trip Duration (or
"nan") clears Trip.HasDuration and the trip is left out of the duration sum
and mean; blank station, user type and gender cells are empty strings that the
aggregates in package report skip. A non-blank cell that does not parse is an
error.

# Derived fields

Month number, weekday name and hour of day are computed from Start Time when
a row is parsed and never change afterwards. Filtering copies trips into a
new Dataset; the source Dataset is left untouched.
*/
package trips
