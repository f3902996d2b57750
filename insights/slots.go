package insights

import (
	"fmt"
	"math"
)

// Interval is a busy block within the day, in fractional hours-of-day.
// The block occupies [Start, End); intervals may overlap freely.
type Interval struct {
	Start float64
	End   float64
}

type SlotConfig struct {
	DayStart      float64 // window start, hour of day
	DayEnd        float64 // window end, hour of day
	GridMinutes   int     // cell size of the discretized day
	PreferredHour float64 // peak of the workout preference curve
	CoreStart     float64 // hobby slots are only suggested outside [CoreStart, CoreEnd]
	CoreEnd       float64
	MinFreeCells  int // hobby suggestions need at least this many free cells
}

func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		DayStart:      8,
		DayEnd:        22,
		GridMinutes:   30,
		PreferredHour: 16,
		CoreStart:     12,
		CoreEnd:       18,
		MinFreeCells:  3,
	}
}

// SlotPlan is the outcome of a slot search. Workout is a formatted
// "H:MM" time, empty when the day leaves no free cell.
type SlotPlan struct {
	Workout string   `json:"workout"`
	Hobbies []string `json:"hobbies"`
}

// FindSlots discretizes the day window into fixed-size cells, unions the
// busy intervals onto the grid, and picks the free cell closest to the
// preferred hour for a workout, scoring each cell by a triangular curve
// that decays to zero at the window edges. Up to hobbyCount further free
// cells outside the midday core are suggested for hobbies. The search is
// a single greedy pass: identical inputs always produce identical output.
func FindSlots(events []Interval, hobbyCount int, cfg SlotConfig) SlotPlan {
	cellHours := float64(cfg.GridMinutes) / 60.0
	n := int(math.Round((cfg.DayEnd - cfg.DayStart) / cellHours))
	plan := SlotPlan{Hobbies: []string{}}
	if n <= 0 {
		return plan
	}

	busy := make([]bool, n)
	for _, ev := range events {
		lo := int(math.Floor((ev.Start - cfg.DayStart) / cellHours))
		hi := int(math.Ceil((ev.End - cfg.DayStart) / cellHours))
		if lo < 0 {
			lo = 0
		}
		if hi > n {
			hi = n
		}
		for i := lo; i < hi; i++ {
			busy[i] = true
		}
	}

	var free []int
	for i := range busy {
		if !busy[i] {
			free = append(free, i)
		}
	}

	// Triangular preference, zero at the farther window edge.
	reach := math.Max(cfg.PreferredHour-cfg.DayStart, cfg.DayEnd-cfg.PreferredHour)
	bestScore := -1.0
	workoutHour := -1.0
	for _, i := range free {
		hour := cfg.DayStart + float64(i)*cellHours
		score := 1 - math.Abs(hour-cfg.PreferredHour)/reach
		if score > bestScore { // strict: first occurrence wins ties
			bestScore = score
			workoutHour = hour
		}
	}
	if workoutHour >= 0 {
		plan.Workout = FormatHour(workoutHour)
	}

	if hobbyCount > 0 && len(free) >= cfg.MinFreeCells {
		for _, i := range free {
			hour := cfg.DayStart + float64(i)*cellHours
			if hour == workoutHour {
				continue
			}
			if hour >= cfg.CoreStart && hour <= cfg.CoreEnd {
				continue
			}
			plan.Hobbies = append(plan.Hobbies, FormatHour(hour))
			if len(plan.Hobbies) >= hobbyCount {
				break
			}
		}
	}
	return plan
}

// FormatHour renders a fractional hour-of-day as "H:MM".
func FormatHour(hour float64) string {
	h := int(hour)
	m := int(math.Round((hour - float64(h)) * 60))
	if m == 60 {
		h, m = h+1, 0
	}
	return fmt.Sprintf("%d:%02d", h, m)
}
