// Package difficulty turns a difficulty level into a mine count.
package difficulty

import (
	"errors"
	"fmt"
)

const (
	Min     = 1
	Max     = 10
	Default = 2

	// Steps is the number of levels between the low and high densities.
	Steps = 10

	lowPercent  = 2
	highPercent = 30
)

var ErrInvalidArgument = errors.New("invalid argument")

// MineCount interpolates linearly between 2% and 30% of totalCells across
// Steps levels. Level is not clamped; see Clamp.
func MineCount(totalCells, level int) (int, error) {
	if totalCells < 0 {
		return 0, fmt.Errorf("%w: cell count must not be negative, got %d", ErrInvalidArgument, totalCells)
	}
	if level < 0 {
		return 0, fmt.Errorf("%w: difficulty must not be negative, got %d", ErrInvalidArgument, level)
	}

	low := totalCells * lowPercent / 100
	high := totalCells * highPercent / 100

	// floor((high-low)/Steps*level + low), kept in integers so that whole
	// results are never rounded down by float error.
	return (high-low)*level/Steps + low, nil
}

// Clamp constrains level to Min..Max.
func Clamp(level int) int {
	return max(Min, min(Max, level))
}
