package geometry

import (
	"math"
	"testing"

	"go-mines/internal/minefield"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketBoundaries(t *testing.T) {
	b, err := BucketBoundaries(4, 400)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 100, 200, 300}, b)

	b, err = BucketBoundaries(2, 29)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 14.5}, b)

	b, err = BucketBoundaries(0, 10)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestBucketBoundaries_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		count int
		span  float64
		want  error
	}{
		{"negative count", -1, 200, ErrInvalidArgument},
		{"negative span", 1, -200, ErrInvalidArgument},
		{"both negative", -1, -200, ErrInvalidArgument},
		{"more buckets than span", 6, 4, ErrInvalidArgument},
		{"nan span", 1, math.NaN(), ErrNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BucketBoundaries(tt.count, tt.span)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCoordinateToIndex_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		count int
		span  float64
	}{{4, 400}, {2, 29}, {20, 400}, {7, 7}, {13, 100}} {
		b, err := BucketBoundaries(tc.count, tc.span)
		require.NoError(t, err)

		for i, v := range b {
			got, err := CoordinateToIndex(v, b)
			require.NoError(t, err)
			assert.Equal(t, i, got, "boundary %g of %v", v, b)
		}
	}
}

func TestCoordinateToIndex(t *testing.T) {
	b := []float64{0, 100, 200, 300}

	tests := []struct {
		pixel float64
		want  int
	}{
		{0, 0},
		{99.9, 0},
		{100, 1},
		{250, 2},
		{399, 3},
		{1000, 3},
	}
	for _, tt := range tests {
		got, err := CoordinateToIndex(tt.pixel, b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "pixel %g", tt.pixel)
	}

	got, err := CoordinateToIndex(11, []float64{12})
	require.NoError(t, err)
	assert.Equal(t, OutOfRange, got)
}

func TestCoordinateToIndex_Unsorted(t *testing.T) {
	values := []float64{-10, -0.5, 0, 10, 20, 10.5}

	// sorted: -10 -0.5 0 10 10.5 20
	got, err := CoordinateToIndex(11.5, values)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	// the caller's slice is left alone
	assert.Equal(t, []float64{-10, -0.5, 0, 10, 20, 10.5}, values)
}

func TestCoordinateToIndex_Errors(t *testing.T) {
	_, err := CoordinateToIndex(-5, []float64{0, 1})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = CoordinateToIndex(5, nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = CoordinateToIndex(5, []float64{-10, -0.5, 0, 10, math.NaN(), 10.5})
	require.ErrorIs(t, err, ErrNotNumeric)

	_, err = CoordinateToIndex(math.NaN(), []float64{0})
	require.ErrorIs(t, err, ErrNotNumeric)
}

func TestClosestBelow(t *testing.T) {
	values := []float64{-10, -0.5, 0, 10, 20, 10.5}

	tests := []struct {
		pixel float64
		want  float64
	}{
		{11.5, 10.5},
		{0, 0},
		{5.5, 0},
		{11, 10.5},
	}
	for _, tt := range tests {
		got, ok, err := ClosestBelow(tt.pixel, values)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "pixel %g", tt.pixel)
	}

	got, ok, err := ClosestBelow(11, []float64{10})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10.0, got)

	_, ok, err = ClosestBelow(11, []float64{12})
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = ClosestBelow(-5, values)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, _, err = ClosestBelow(5, []float64{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestMapper(t *testing.T) {
	grid, err := minefield.NewGrid(20, 10)
	require.NoError(t, err)

	m, err := NewMapper(grid, 3, 1)
	require.NoError(t, err)

	w, h := m.Bounds()
	assert.Equal(t, 60.0, w)
	assert.Equal(t, 10.0, h)

	tests := []struct {
		x, y float64
		want minefield.Position
	}{
		{0, 0, minefield.Position{Row: 0, Col: 0}},
		{2, 0, minefield.Position{Row: 0, Col: 0}},
		{3, 0, minefield.Position{Row: 0, Col: 1}},
		{59, 9, minefield.Position{Row: 9, Col: 19}},
		{31.5, 4.2, minefield.Position{Row: 4, Col: 10}},
	}
	for _, tt := range tests {
		got, ok := m.Cell(tt.x, tt.y)
		require.True(t, ok, "%g,%g", tt.x, tt.y)
		assert.Equal(t, tt.want, got)
	}

	for _, p := range [][2]float64{{-1, 0}, {0, -1}, {60, 0}, {0, 10}, {math.NaN(), 0}} {
		_, ok := m.Cell(p[0], p[1])
		assert.False(t, ok, "%v", p)
	}
}

func TestMapper_InvalidCellSize(t *testing.T) {
	grid, err := minefield.NewGrid(5, 5)
	require.NoError(t, err)

	_, err = NewMapper(grid, 0, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
