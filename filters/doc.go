// Package filters defines the city, month and day enumerations and collects a
// validated Selection from the console.
//
// The enumerations are fixed for the lifetime of the process. Accessors return
// copies so callers cannot mutate them.
package filters
