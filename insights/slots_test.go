package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSlotsEmptyDayPrefersPeakHour(t *testing.T) {
	plan := FindSlots(nil, 0, DefaultSlotConfig())
	assert.Equal(t, "16:00", plan.Workout)
	assert.Empty(t, plan.Hobbies)
}

func TestFindSlotsAvoidsBusyIntervals(t *testing.T) {
	events := []Interval{{Start: 15, End: 17}} // covers the preferred hour
	plan := FindSlots(events, 0, DefaultSlotConfig())
	// nearest free cell to the 16:00 peak is 17:00
	assert.Equal(t, "17:00", plan.Workout)
}

func TestFindSlotsFullyBookedDay(t *testing.T) {
	events := []Interval{{Start: 8, End: 22}}
	plan := FindSlots(events, 3, DefaultSlotConfig())
	assert.Empty(t, plan.Workout, "a fully booked day has no clear slot")
	assert.Empty(t, plan.Hobbies)
}

func TestFindSlotsOverlappingEventsUnion(t *testing.T) {
	overlapping := []Interval{
		{Start: 8, End: 15},
		{Start: 12, End: 22},
		{Start: 10, End: 14},
	}
	plan := FindSlots(overlapping, 2, DefaultSlotConfig())
	assert.Empty(t, plan.Workout)
}

func TestFindSlotsDeterministic(t *testing.T) {
	events := []Interval{{Start: 9, End: 12.5}, {Start: 14, End: 16.5}, {Start: 18, End: 20}}
	first := FindSlots(events, 2, DefaultSlotConfig())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FindSlots(events, 2, DefaultSlotConfig()))
	}
}

func TestFindSlotsHobbiesOutsideCore(t *testing.T) {
	events := []Interval{{Start: 9, End: 11}}
	plan := FindSlots(events, 3, DefaultSlotConfig())

	require.Equal(t, "16:00", plan.Workout)
	require.Len(t, plan.Hobbies, 3)
	// chronological, outside 12:00-18:00, skipping the workout cell
	assert.Equal(t, []string{"8:00", "8:30", "11:00"}, plan.Hobbies)
}

func TestFindSlotsHobbyCountRespected(t *testing.T) {
	plan := FindSlots(nil, 1, DefaultSlotConfig())
	assert.Len(t, plan.Hobbies, 1)
}

func TestFindSlotsNoHobbiesWhenFewFreeCells(t *testing.T) {
	// only two free cells remain
	events := []Interval{{Start: 8, End: 20}, {Start: 21, End: 22}}
	plan := FindSlots(events, 2, DefaultSlotConfig())
	assert.Equal(t, "20:00", plan.Workout)
	assert.Empty(t, plan.Hobbies)
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "8:00", FormatHour(8))
	assert.Equal(t, "16:30", FormatHour(16.5))
	assert.Equal(t, "9:15", FormatHour(9.25))
}
