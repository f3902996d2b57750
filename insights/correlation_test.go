package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, n)
}

func series(vals ...float64) Series {
	s := make(Series, len(vals))
	for i, v := range vals {
		s[i] = Point{Date: day(i), Value: v}
	}
	return s
}

func TestCorrelatePerfectPositive(t *testing.T) {
	sleep := series(6, 7, 8, 5, 9, 7.5)
	mood := make(Series, len(sleep))
	for i, p := range sleep {
		mood[i] = Point{Date: p.Date, Value: p.Value * 0.5} // exact scaling
	}

	res := Correlate(sleep, mood, DefaultCorrelationConfig())
	require.True(t, res.Defined)
	assert.InDelta(t, 1.0, res.Coefficient, 1e-9)
	assert.True(t, res.Strong)
	assert.Equal(t, 6, res.Pairs)
}

func TestCorrelatePerfectNegative(t *testing.T) {
	a := series(1, 2, 3, 4, 5)
	b := series(5, 4, 3, 2, 1)

	res := Correlate(a, b, DefaultCorrelationConfig())
	require.True(t, res.Defined)
	assert.InDelta(t, -1.0, res.Coefficient, 1e-9)
	assert.True(t, res.Strong)
}

func TestCorrelateTooFewPairs(t *testing.T) {
	res := Correlate(series(1, 2, 3, 4), series(1, 2, 3, 4), DefaultCorrelationConfig())
	assert.False(t, res.Defined)
	assert.False(t, res.Strong)
	assert.Equal(t, 4, res.Pairs)
}

func TestCorrelateJoinsOnDate(t *testing.T) {
	// b is missing two of a's dates: only the aligned pairs count
	a := series(1, 2, 3, 4, 5, 6)
	b := Series{
		{Date: day(0), Value: 2},
		{Date: day(2), Value: 6},
		{Date: day(3), Value: 8},
		{Date: day(4), Value: 10},
	}

	res := Correlate(a, b, DefaultCorrelationConfig())
	assert.Equal(t, 4, res.Pairs)
	assert.False(t, res.Defined) // 4 < MinPairs
}

func TestCorrelateZeroVarianceUndefined(t *testing.T) {
	flat := series(7, 7, 7, 7, 7, 7)
	varying := series(1, 2, 3, 4, 5, 6)

	res := Correlate(flat, varying, DefaultCorrelationConfig())
	assert.False(t, res.Defined, "zero variance must be undefined, not 0 or 1")
	assert.False(t, res.Strong)
	assert.Zero(t, res.Coefficient)
}

func TestStrongestLinkPicksLargerMagnitude(t *testing.T) {
	mood := series(1, 2, 3, 4, 5, 4)
	aligned := mood              // r = 1
	noisy := series(2, 1, 3, 5, 4, 4) // weaker

	link := StrongestLink(mood, []NamedSeries{
		{Name: "steps", Points: noisy},
		{Name: "sleep", Points: aligned},
	}, DefaultCorrelationConfig())

	require.NotNil(t, link)
	assert.Equal(t, "sleep", link.Metric)
	assert.True(t, link.Positive)
}

func TestStrongestLinkNoneBelowThreshold(t *testing.T) {
	mood := series(3, 1, 4, 1, 5, 9, 2, 6)
	weak := series(5, 5.1, 4.9, 5, 5.2, 4.8, 5, 5.1)

	link := StrongestLink(mood, []NamedSeries{{Name: "sleep", Points: weak}},
		CorrelationConfig{MinPairs: 5, Threshold: 0.95})
	assert.Nil(t, link)
}
