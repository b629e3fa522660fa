package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestCircle(t *testing.T) {
	for _, r := range []float64{0, 0.5, 1, 2, 3.75, 1e6} {
		got, err := Circle(r)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi*r*r, got.Area, tolerance*math.Max(1, got.Area))
		assert.InDelta(t, 2*math.Pi*r, got.Circumference, tolerance*math.Max(1, got.Circumference))
	}
}

func TestCircle_Rejects(t *testing.T) {
	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := Circle(r)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
}

func TestCircleAndRectangle_OverflowIsRejected(t *testing.T) {
	_, err := Circle(1e200)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = Rectangle(1e200, 1e200)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = Rectangle(1e308, 1e308)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestRectangle(t *testing.T) {
	got, err := Rectangle(3, 4)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got.Area, tolerance)
	assert.InDelta(t, 14.0, got.Perimeter, tolerance)

	_, err = Rectangle(-3, 4)
	require.Error(t, err)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "width", validation.Field)

	_, err = Rectangle(3, -4)
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "height", validation.Field)
}

func TestPower(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exponent float64
		withRoot bool
		result   float64
		root     *float64
		wantErr  bool
	}{
		{name: "2^10", base: 2, exponent: 10, result: 1024},
		{name: "negative base without root", base: -4, exponent: 2, result: 16},
		{name: "root requested", base: 9, exponent: 2, withRoot: true, result: 81, root: func() *float64 { v := 3.0; return &v }()},
		{name: "root on negative base", base: -4, exponent: 2, withRoot: true, wantErr: true},
		{name: "fractional power of negative base", base: -8, exponent: 0.5, wantErr: true},
		{name: "overflow", base: 10, exponent: 1000, wantErr: true},
		{name: "zero to negative power", base: 0, exponent: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Power(tt.base, tt.exponent, tt.withRoot)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.result, got.Result, tolerance)

			if tt.root == nil {
				assert.Nil(t, got.Root)
			} else {
				require.NotNil(t, got.Root)
				assert.InDelta(t, *tt.root, *got.Root, tolerance)
			}
		})
	}
}
