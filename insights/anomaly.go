package insights

import (
	"fmt"
	"math"
	"time"
)

// DayMetrics is one day of the health log as the anomaly detector sees it.
type DayMetrics struct {
	Date      time.Time
	Steps     int
	Sleep     float64
	HeartRate int
}

type AnomalyConfig struct {
	MinDays        int     // minimum chronological days before any check runs
	SpikeThreshold float64 // day-over-day step increase counting as a spike, e.g. 0.5
	CrashThreshold float64 // following-day decrease counting as a crash, e.g. -0.4
	GoodSleepHours float64 // sleep above this still counts as "good"
	HeartRateDelta float64 // bpm above the series mean that flags elevation
	RecentDays     int     // trailing window for the heart-rate check
}

func DefaultAnomalyConfig() AnomalyConfig {
	return AnomalyConfig{
		MinDays:        7,
		SpikeThreshold: 0.5,
		CrashThreshold: -0.4,
		GoodSleepHours: 7.0,
		HeartRateDelta: 5,
		RecentDays:     2,
	}
}

// Alert is a single detected anomaly. Kind is a stable identifier for
// persistence and push payloads; Title/Message are user-facing.
type Alert struct {
	Kind    string
	Title   string
	Message string
}

// Detect scans a chronologically ordered health log for a spike-then-crash
// step pattern, then for elevated resting heart rate despite good sleep.
// At most one alert is returned, spike-crash winning when both would fire.
// Too little data yields nil, never an error.
func Detect(days []DayMetrics, cfg AnomalyConfig) *Alert {
	if len(days) < cfg.MinDays {
		return nil
	}

	if a := detectSpikeCrash(days, cfg); a != nil {
		return a
	}
	return detectSleepStress(days, cfg)
}

// stepChange mirrors a percentage change over raw step counts. A jump
// from zero is treated as an infinite increase so it still registers as
// a spike.
func stepChange(prev, cur int) float64 {
	if prev == 0 {
		if cur == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return float64(cur-prev) / float64(prev)
}

func detectSpikeCrash(days []DayMetrics, cfg AnomalyConfig) *Alert {
	for i := 2; i < len(days); i++ {
		spike := stepChange(days[i-2].Steps, days[i-1].Steps)
		crash := stepChange(days[i-1].Steps, days[i].Steps)
		if spike > cfg.SpikeThreshold && crash < cfg.CrashThreshold {
			return &Alert{
				Kind:  "burnout",
				Title: "Pace & Consistency Alert",
				Message: fmt.Sprintf(
					"A large activity spike on %s was followed by a crash. This pattern can lead to burnout. Aiming for consistency is often more effective.",
					days[i-1].Date.Format("Jan 02")),
			}
		}
	}
	return nil
}

func detectSleepStress(days []DayMetrics, cfg AnomalyConfig) *Alert {
	if len(days) < cfg.RecentDays {
		return nil
	}

	var sum float64
	for _, d := range days {
		sum += float64(d.HeartRate)
	}
	mean := sum / float64(len(days))

	for _, d := range days[len(days)-cfg.RecentDays:] {
		if d.Sleep <= cfg.GoodSleepHours || float64(d.HeartRate) <= mean+cfg.HeartRateDelta {
			return nil
		}
	}
	return &Alert{
		Kind:  "stress",
		Title: "Stress Alert",
		Message: "Your resting heart rate has been higher than usual for the past two days, even with good sleep. " +
			"This can be a sign of stress. Consider a mindfulness exercise today.",
	}
}
