package nomogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLog_MonotonicAndInvertible(t *testing.T) {
	p, err := NewLogLog(Limits{Min: 1, Max: 1000}, Limits{Min: 1e-4, Max: 1})
	require.NoError(t, err)

	values := []float64{1e-6, 1e-4, 0.003, 0.5, 1, 7, 99, 1000, 2.5e4}
	prevX, prevY := -1e300, -1e300
	for _, v := range values {
		x, y, err := p.Forward(v, v)
		require.NoError(t, err)
		assert.Greater(t, x, prevX)
		assert.Greater(t, y, prevY)
		prevX, prevY = x, y

		f, vel := p.Inverse(x, y)
		assert.InEpsilon(t, v, f, 1e-9)
		assert.InEpsilon(t, v, vel, 1e-9)
	}
}

func TestLogLog_Corners(t *testing.T) {
	p, err := NewLogLog(Limits{Min: 1, Max: 1000}, Limits{Min: 1e-4, Max: 1})
	require.NoError(t, err)

	x, y, err := p.Forward(1, 1e-4)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)

	x, y, err = p.Forward(1000, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)
}

func TestLogLog_NonPositive(t *testing.T) {
	p, err := NewLogLog(Limits{Min: 1, Max: 10}, Limits{Min: 1, Max: 10})
	require.NoError(t, err)

	_, _, err = p.Forward(0, 1)
	assert.ErrorIs(t, err, ErrNonPositive)
	_, _, err = p.Forward(1, -3)
	assert.ErrorIs(t, err, ErrNonPositive)

	_, err = NewLogLog(Limits{Min: 0, Max: 10}, Limits{Min: 1, Max: 10})
	assert.ErrorIs(t, err, ErrNonPositive)
	_, err = NewLogLog(Limits{Min: 1, Max: 10}, Limits{Min: 5, Max: 5})
	assert.ErrorIs(t, err, ErrInvalidLimits)
}

func TestLimits_SafeLog(t *testing.T) {
	l := Limits{Min: -1, Max: 100}.safeLog()
	assert.InDelta(t, -2, l.Min, 1e-12)
	assert.InDelta(t, 2, l.Max, 1e-12)

	l = Limits{Min: 1000, Max: 10}.safeLog()
	assert.InDelta(t, 1, l.Min, 1e-12)
	assert.InDelta(t, 3, l.Max, 1e-12)
}
