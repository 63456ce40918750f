package model

import "github.com/samber/lo"

const (
	minRoomChangeBreak = 25 // Minutes of rest required around a room change
	maxRoomChangeBreak = 45 // Minutes of rest tolerated around a room change

	fewRoomChangesPenalty  = 100  // Exactly two room changes in a day
	manyRoomChangesPenalty = 1000 // More than two room changes in a day
)

// A constraint scores one day group: the lessons assigned to a single day of
// week, already sorted by start time. Hard constraints gate feasibility, soft
// ones are quality signals; rewards raise the soft score instead of lowering it
type constraint struct {
	name   string
	hard   bool
	reward bool
	apply  func(dayGroup []Lesson, index AvailabilityIndex) (int, error)
}

func constraints() []constraint {
	return []constraint{
		// Hard
		{name: "noOverlap", hard: true, apply: noOverlap},
		{name: "possibleTimeAndPlace", hard: true, apply: possibleTimeAndPlace},

		// Soft
		{name: "roomChangeBreak", apply: roomChangeBreak},
		{name: "roomStability", apply: roomStability},
		{name: "consecutiveLessons", reward: true, apply: consecutiveLessons},
	}
}

// Adjacent lessons must not overlap: 10:30-10:45 followed by 10:40-11:00 is a
// violation. Checking adjacent pairs is enough since the group is sorted by
// start time
func noOverlap(dayGroup []Lesson, index AvailabilityIndex) (int, error) {
	penalty := 0
	for i := 0; i+1 < len(dayGroup); i++ {
		lesson, next := dayGroup[i], dayGroup[i+1]

		duration, err := index.DurationFor(lesson.Student)
		if err != nil {
			return 0, err
		}

		if lesson.Timeslot.Start.AddMinutes(duration) > next.Timeslot.Start {
			penalty++
		}
	}
	return penalty, nil
}

// Every lesson must fit entirely inside one of its student's availability
// windows, in the assigned room on the assigned day. Both boundaries are
// inclusive: a lesson spanning exactly window.Start..window.End is feasible
func possibleTimeAndPlace(dayGroup []Lesson, index AvailabilityIndex) (int, error) {
	penalty := 0
	for _, lesson := range dayGroup {
		if lesson.Room == nil { // Room not yet assigned, nothing to judge
			continue
		}

		duration, err := index.DurationFor(lesson.Student)
		if err != nil {
			return 0, err
		}
		windows, err := index.WindowsFor(lesson.Student)
		if err != nil {
			return 0, err
		}

		start := lesson.Timeslot.Start
		end := start.AddMinutes(duration)

		possible := lo.SomeBy(windows, func(window AvailabilityWindow) bool {
			return window.Room == *lesson.Room &&
				window.Day == lesson.Timeslot.Day &&
				window.Start <= start &&
				end <= window.End
		})

		if !possible {
			penalty++
		}
	}
	return penalty, nil
}

// A room change needs a travel break between 25 and 45 minutes. Every minute
// below the minimum or above the maximum costs one point. Weighted soft on
// purpose, even though the break itself reads like a hard requirement
func roomChangeBreak(dayGroup []Lesson, index AvailabilityIndex) (int, error) {
	penalty := 0
	for i := 0; i+1 < len(dayGroup); i++ {
		lesson, next := dayGroup[i], dayGroup[i+1]
		if !roomsDiffer(lesson, next) {
			continue
		}

		duration, err := index.DurationFor(lesson.Student)
		if err != nil {
			return 0, err
		}

		gap := next.Timeslot.Start.Sub(lesson.Timeslot.Start.AddMinutes(duration))
		if gap < minRoomChangeBreak {
			penalty += minRoomChangeBreak - gap
		} else if gap > maxRoomChangeBreak {
			penalty += gap - maxRoomChangeBreak
		}
	}
	return penalty, nil
}

// The teacher prefers staying in one room all day. Up to one change is free,
// two cost 100 and anything beyond that jumps to 1000: the tiers are
// deliberately non-linear, there is no interpolation between them
func roomStability(dayGroup []Lesson, _ AvailabilityIndex) (int, error) {
	changes := 0
	for i := 0; i+1 < len(dayGroup); i++ {
		if roomsDiffer(dayGroup[i], dayGroup[i+1]) {
			changes++
		}
	}

	switch {
	case changes == 2:
		return fewRoomChangesPenalty, nil
	case changes > 2:
		return manyRoomChangesPenalty, nil
	default:
		return 0, nil
	}
}

// Back-to-back lessons are rewarded: one point per adjacent pair with a gap of
// exactly zero minutes
func consecutiveLessons(dayGroup []Lesson, index AvailabilityIndex) (int, error) {
	reward := 0
	for i := 0; i+1 < len(dayGroup); i++ {
		lesson, next := dayGroup[i], dayGroup[i+1]

		duration, err := index.DurationFor(lesson.Student)
		if err != nil {
			return 0, err
		}

		if lesson.Timeslot.Start.AddMinutes(duration) == next.Timeslot.Start {
			reward++
		}
	}
	return reward, nil
}

// A pair only counts as a room change once both rooms are assigned
func roomsDiffer(lesson, next Lesson) bool {
	return lesson.Room != nil && next.Room != nil && *lesson.Room != *next.Room
}
