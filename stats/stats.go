// Package stats provides the column aggregates behind the reports: value
// counts, mode, sum, mean and min/max.
//
// Ties are broken by first occurrence: among equally frequent values the one
// that appears earliest in the input wins.
package stats

import (
	"cmp"
	"slices"
)

// Count is one entry of a frequency table
type Count[T comparable] struct {
	Value T
	N     int
}

// ValueCounts returns the distinct values of values ordered by frequency,
// most frequent first. Equal counts keep first-occurrence order.
func ValueCounts[T comparable](values []T) []Count[T] {
	pos := make(map[T]int, len(values))
	counts := make([]Count[T], 0)
	for _, v := range values {
		i, ok := pos[v]
		if !ok {
			i = len(counts)
			pos[v] = i
			counts = append(counts, Count[T]{Value: v})
		}
		counts[i].N++
	}
	slices.SortStableFunc(counts, func(a, b Count[T]) int {
		return cmp.Compare(b.N, a.N)
	})
	return counts
}

// Mode returns the most frequent value. ok is false for empty input.
func Mode[T comparable](values []T) (mode T, ok bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return mode, false
	}
	return counts[0].Value, true
}

// Sum returns the total of values.
func Sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean. ok is false for empty input.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return Sum(values) / float64(len(values)), true
}

// MinMax returns the smallest and largest value. ok is false for empty input.
func MinMax[T cmp.Ordered](values []T) (lo, hi T, ok bool) {
	if len(values) == 0 {
		return lo, hi, false
	}
	return slices.Min(values), slices.Max(values), true
}
