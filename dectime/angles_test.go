package dectime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/decimalwatch/dectime"
)

const epsilon = 1e-9

func TestHandAnglesStandard(t *testing.T) {
	a, err := dectime.HandAngles(dectime.WallClock{Hour: 3}, dectime.ModeStandard)
	require.NoError(t, err)
	assert.InDelta(t, 0, a.Second, epsilon)
	assert.InDelta(t, 0, a.Minute, epsilon)
	assert.InDelta(t, 0.25, a.Hour, epsilon)

	a, err = dectime.HandAngles(dectime.WallClock{Hour: 21, Minute: 30, Second: 15}, dectime.ModeStandard)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, a.Second, epsilon)
	assert.InDelta(t, 0.5, a.Minute, epsilon)
	assert.InDelta(t, 9.5/12, a.Hour, epsilon)
}

func TestHandAnglesDecimal(t *testing.T) {
	a, err := dectime.HandAngles(dectime.WallClock{Hour: 7, Minute: 30}, dectime.ModeDecimal)
	require.NoError(t, err)
	assert.InDelta(t, 0.73, a.Hour, epsilon)
	assert.InDelta(t, 0.30, a.Minute, epsilon)
	assert.InDelta(t, 0, a.Second, epsilon)

	// the second field is scaled by 100 whatever dial it came from
	a, err = dectime.HandAngles(dectime.WallClock{Hour: 13, Second: 45}, dectime.ModeDecimal)
	require.NoError(t, err)
	assert.InDelta(t, 0.45, a.Second, epsilon)
	assert.InDelta(t, 0.3, a.Hour, epsilon)
}

func TestDecimalAngles(t *testing.T) {
	d := dectime.MustDecimal(dectime.WallClock{Hour: 18})
	a := d.Angles()
	assert.InDelta(t, 0.75, a.Hour, epsilon)
	assert.InDelta(t, 0.5, a.Minute, epsilon)
	assert.InDelta(t, 0, a.Second, epsilon)
}

func TestHandAnglesErrors(t *testing.T) {
	_, err := dectime.HandAngles(dectime.WallClock{Minute: 61}, dectime.ModeStandard)
	assert.ErrorIs(t, err, dectime.ErrOutOfRange)

	_, err = dectime.HandAngles(dectime.WallClock{}, dectime.Mode(9))
	assert.ErrorIs(t, err, dectime.ErrUnknownMode)
}

func TestHandAnglesFullDay(t *testing.T) {
	inRange := func(f float64) bool { return f >= 0 && f < 1 }
	for s := 0; s < dectime.SecondsPerDay; s++ {
		w := dectime.WallClock{Hour: s / 3600, Minute: s / 60 % 60, Second: s % 60}
		for _, mode := range []dectime.Mode{dectime.ModeStandard, dectime.ModeDecimal} {
			a, err := dectime.HandAngles(w, mode)
			require.NoError(t, err)
			require.True(t, inRange(a.Second) && inRange(a.Minute) && inRange(a.Hour),
				"%s angles %+v out of range at %+v", mode, a, w)
		}
		a := dectime.MustDecimal(w).Angles()
		require.True(t, inRange(a.Second) && inRange(a.Minute) && inRange(a.Hour),
			"decimal reading angles %+v out of range at %+v", a, w)
	}
}

func TestRotation(t *testing.T) {
	a := dectime.Angles{Second: 0.5, Minute: 0.25, Hour: 0.73}
	s, m, h := a.Rotation(dectime.FullTurn)
	assert.Equal(t, int32(0x8000), s)
	assert.Equal(t, int32(0x4000), m)
	assert.Equal(t, int32(47841), h)
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		in   string
		want dectime.Mode
		err  bool
	}{
		{"standard", dectime.ModeStandard, false},
		{"Decimal", dectime.ModeDecimal, false},
		{" dec ", dectime.ModeDecimal, false},
		{"std", dectime.ModeStandard, false},
		{"metric", 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := dectime.ParseMode(tc.in)
			if tc.err {
				assert.ErrorIs(t, err, dectime.ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	var m dectime.Mode
	require.NoError(t, m.UnmarshalText([]byte("decimal")))
	assert.Equal(t, dectime.ModeDecimal, m)
	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "decimal", string(text))
	assert.Equal(t, "Mode(7)", dectime.Mode(7).String())
}
