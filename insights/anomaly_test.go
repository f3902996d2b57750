package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepDays(steps ...int) []DayMetrics {
	days := make([]DayMetrics, len(steps))
	for i, s := range steps {
		days[i] = DayMetrics{Date: day(i), Steps: s, Sleep: 6.5, HeartRate: 60}
	}
	return days
}

func TestDetectTooFewDays(t *testing.T) {
	for n := 0; n < 7; n++ {
		days := stepDays(make([]int, n)...)
		assert.Nil(t, Detect(days, DefaultAnomalyConfig()), "series of length %d must yield no alert", n)
	}
}

func TestDetectSpikeThenCrash(t *testing.T) {
	// day 3 → 4: +60% spike, day 4 → 5: -45% crash
	days := stepDays(5000, 5200, 5100, 5000, 8000, 4400, 5000)

	alert := Detect(days, DefaultAnomalyConfig())
	require.NotNil(t, alert)
	assert.Equal(t, "burnout", alert.Kind)
	assert.Contains(t, alert.Message, days[4].Date.Format("Jan 02"), "alert must name the spike date")
}

func TestDetectSteadyStepsNoAlert(t *testing.T) {
	days := stepDays(5000, 5200, 5100, 5300, 5000, 5150, 5250)
	assert.Nil(t, Detect(days, DefaultAnomalyConfig()))
}

func TestDetectSpikeFromZeroSteps(t *testing.T) {
	// a jump from a zero-step day counts as a spike
	days := stepDays(5000, 5000, 0, 6000, 3000, 5000, 5000)

	alert := Detect(days, DefaultAnomalyConfig())
	require.NotNil(t, alert)
	assert.Equal(t, "burnout", alert.Kind)
}

func TestDetectSleepStress(t *testing.T) {
	days := stepDays(5000, 5100, 5000, 5200, 5100, 5000, 5100)
	// five baseline days at 60 bpm, last two elevated with good sleep
	for i := range days {
		days[i].HeartRate = 60
	}
	days[5].HeartRate = 72
	days[5].Sleep = 7.5
	days[6].HeartRate = 74
	days[6].Sleep = 8.0

	alert := Detect(days, DefaultAnomalyConfig())
	require.NotNil(t, alert)
	assert.Equal(t, "stress", alert.Kind)
}

func TestDetectNoStressWithPoorSleep(t *testing.T) {
	days := stepDays(5000, 5100, 5000, 5200, 5100, 5000, 5100)
	days[5].HeartRate = 75
	days[5].Sleep = 5.0 // elevated HR but sleep is short, not the stress pattern
	days[6].HeartRate = 75
	days[6].Sleep = 8.0

	assert.Nil(t, Detect(days, DefaultAnomalyConfig()))
}

func TestDetectSpikeCrashWinsOverStress(t *testing.T) {
	// both patterns present; spike-crash is checked first
	days := stepDays(5000, 8000, 4000, 5000, 5100, 5000, 5100)
	days[5].HeartRate = 80
	days[5].Sleep = 8.0
	days[6].HeartRate = 82
	days[6].Sleep = 8.0

	alert := Detect(days, DefaultAnomalyConfig())
	require.NotNil(t, alert)
	assert.Equal(t, "burnout", alert.Kind)
}
