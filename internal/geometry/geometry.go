// Package geometry maps pointer coordinates onto grid cells using bucket
// boundaries spread evenly over the rendered grid.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotNumeric is returned when a coordinate or boundary is NaN.
	ErrNotNumeric = errors.New("not a number")
	ErrEmptyInput = errors.New("empty boundary sequence")
)

// OutOfRange is returned by CoordinateToIndex when every boundary lies
// above the coordinate.
const OutOfRange = -1

// BucketBoundaries splits span into count equal buckets and returns the
// lower edge of each, starting at 0.
func BucketBoundaries(count int, span float64) ([]float64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: bucket count must not be negative, got %d", ErrInvalidArgument, count)
	}
	if math.IsNaN(span) {
		return nil, fmt.Errorf("%w: span", ErrNotNumeric)
	}
	if span < 0 {
		return nil, fmt.Errorf("%w: span must not be negative, got %g", ErrInvalidArgument, span)
	}
	if float64(count) > span {
		return nil, fmt.Errorf("%w: %d buckets do not fit into span %g", ErrInvalidArgument, count, span)
	}

	boundaries := make([]float64, count)
	for i := range boundaries {
		boundaries[i] = span / float64(count) * float64(i)
	}
	return boundaries, nil
}

// CoordinateToIndex returns the index of the greatest boundary that is not
// above pixel, counted in ascending order. Unsorted input is searched
// through a sorted copy.
func CoordinateToIndex(pixel float64, boundaries []float64) (int, error) {
	sorted, err := prepare(pixel, boundaries)
	if err != nil {
		return OutOfRange, err
	}
	return search(pixel, sorted), nil
}

// ClosestBelow is the value-returning form of CoordinateToIndex. ok is
// false when every value lies above pixel.
func ClosestBelow(pixel float64, values []float64) (value float64, ok bool, err error) {
	sorted, err := prepare(pixel, values)
	if err != nil {
		return 0, false, err
	}
	i := search(pixel, sorted)
	if i == OutOfRange {
		return 0, false, nil
	}
	return sorted[i], true, nil
}

func prepare(pixel float64, boundaries []float64) ([]float64, error) {
	if math.IsNaN(pixel) {
		return nil, fmt.Errorf("%w: coordinate", ErrNotNumeric)
	}
	if pixel < 0 {
		return nil, fmt.Errorf("%w: coordinate must not be negative, got %g", ErrInvalidArgument, pixel)
	}
	if len(boundaries) == 0 {
		return nil, ErrEmptyInput
	}
	for i, b := range boundaries {
		if math.IsNaN(b) {
			return nil, fmt.Errorf("%w: boundary %d", ErrNotNumeric, i)
		}
	}

	if sort.Float64sAreSorted(boundaries) {
		return boundaries, nil
	}
	sorted := slices.Clone(boundaries)
	sort.Float64s(sorted)
	return sorted, nil
}

func search(pixel float64, sorted []float64) int {
	// First boundary strictly above pixel; the one before it is ours.
	return sort.Search(len(sorted), func(i int) bool {
		return sorted[i] > pixel
	}) - 1
}
