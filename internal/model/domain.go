package model

import (
	"fmt"
	"strconv"
	"strings"
)

// GridGranularity is the step (in minutes) between consecutive candidate timeslots.
const GridGranularity = 5

type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayCodes = [...]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ParseDayOfWeek decodes a two-letter day code (MO..SU)
func ParseDayOfWeek(code string) (DayOfWeek, error) {
	for day, dayCode := range dayCodes {
		if dayCode == code {
			return DayOfWeek(day), nil
		}
	}
	return 0, fmt.Errorf("unknown day code: %v", code)
}

func (day DayOfWeek) Code() string {
	return dayCodes[day]
}

func (day DayOfWeek) String() string {
	return dayNames[day]
}

// Days returns all days of the week in their fixed Monday-first order
func Days() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// TimeOfDay is a wall-clock time expressed as minutes since midnight
type TimeOfDay int

// ParseClock parses an "HH:MM" wall-clock string
func ParseClock(clock string) (TimeOfDay, error) {
	hourStr, minuteStr, found := strings.Cut(clock, ":")
	if !found {
		return 0, fmt.Errorf("invalid clock time: %v", clock)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time: %v", clock)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time: %v", clock)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time out of range: %v", clock)
	}

	return TimeOfDay(hour*60 + minute), nil
}

func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Sub returns the signed distance in minutes from other to t
func (t TimeOfDay) Sub(other TimeOfDay) int {
	return int(t) - int(other)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Timeslot is a (day, start, end) wall-clock interval. Equality is by value
type Timeslot struct {
	Day   DayOfWeek
	Start TimeOfDay
	End   TimeOfDay
}

// NewGridTimeslot builds a timeslot with the default grid span from a bare start time
func NewGridTimeslot(day DayOfWeek, start TimeOfDay) Timeslot {
	return Timeslot{
		Day:   day,
		Start: start,
		End:   start.AddMinutes(GridGranularity),
	}
}

// Compare orders timeslots by day first (Monday < ... < Sunday) and start time second
func (slot Timeslot) Compare(other Timeslot) int {
	if slot.Day != other.Day {
		return int(slot.Day) - int(other.Day)
	}
	return slot.Start.Sub(other.Start)
}

func (slot Timeslot) String() string {
	return fmt.Sprintf("%v %v-%v", slot.Day.Code(), slot.Start, slot.End)
}

// Room is identified by its name
type Room struct {
	Name string
}

// AvailabilityWindow states that a student may be taught in Room on Day between Start and End
type AvailabilityWindow struct {
	Room  Room
	Day   DayOfWeek
	Start TimeOfDay
	End   TimeOfDay
}

type Student struct {
	Name     string
	Duration int // Lesson duration in minutes
	Windows  []AvailabilityWindow
}

// Lesson is the planning entity. Timeslot and Room are its decision variables:
// nil means not yet assigned, and only the solver may write them.
// ID is unique and used solely for deterministic tie-breaking
type Lesson struct {
	ID           uint64
	Subject      string
	Student      string
	StudentGroup string
	Timeslot     *Timeslot
	Room         *Room
}
