package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDayOfWeek(t *testing.T) {
	// Every code decodes and round-trips
	for _, day := range Days() {
		decoded, err := ParseDayOfWeek(day.Code())
		assert.Nil(t, err)
		assert.Equal(t, day, decoded)
	}

	_, err := ParseDayOfWeek("XX")
	assert.ErrorContains(t, err, "XX")
}

func TestParseClock(t *testing.T) {
	scenarios := []struct {
		clock   string
		minutes int
		valid   bool
	}{
		{clock: "00:00", minutes: 0, valid: true},
		{clock: "08:30", minutes: 510, valid: true},
		{clock: "23:59", minutes: 1439, valid: true},
		{clock: "24:00", valid: false},
		{clock: "12:60", valid: false},
		{clock: "1230", valid: false},
		{clock: "ab:cd", valid: false},
	}

	for _, scenario := range scenarios {
		parsed, err := ParseClock(scenario.clock)
		if scenario.valid {
			assert.Nil(t, err)
			assert.Equal(t, TimeOfDay(scenario.minutes), parsed)
			assert.Equal(t, scenario.clock, parsed.String())
		} else {
			assert.NotNil(t, err)
		}
	}
}

func TestTimeOfDayArithmetic(t *testing.T) {
	start := TimeOfDay(510) // 08:30

	assert.Equal(t, TimeOfDay(540), start.AddMinutes(30))
	assert.Equal(t, 30, start.AddMinutes(30).Sub(start))
	assert.Equal(t, -30, start.Sub(start.AddMinutes(30)))
}

func TestTimeslotCompare(t *testing.T) {
	// Day is the primary order, start time the secondary
	monday := NewGridTimeslot(Monday, TimeOfDay(18*60))
	tuesday := NewGridTimeslot(Tuesday, TimeOfDay(8*60))
	tuesdayLater := NewGridTimeslot(Tuesday, TimeOfDay(9*60))

	assert.Negative(t, monday.Compare(tuesday))
	assert.Positive(t, tuesday.Compare(monday))
	assert.Negative(t, tuesday.Compare(tuesdayLater))
	assert.Zero(t, tuesday.Compare(tuesday))
}

func TestTimeslotEquality(t *testing.T) {
	a := NewGridTimeslot(Monday, TimeOfDay(600))
	b := NewGridTimeslot(Monday, TimeOfDay(600))
	c := NewGridTimeslot(Monday, TimeOfDay(605))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
