package model

import (
	"fmt"
	"slices"
)

// Score is a two-part solution quality measure. Hard counts feasibility
// violations (negative) and must reach zero for a valid timetable; Soft is an
// unbounded quality signal compared only among equally-feasible solutions
type Score struct {
	Hard int
	Soft int
}

func (score Score) Feasible() bool {
	return score.Hard >= 0
}

// Better reports whether score strictly improves on other: hard score first,
// soft score as the tie-break
func (score Score) Better(other Score) bool {
	if score.Hard != other.Hard {
		return score.Hard > other.Hard
	}
	return score.Soft > other.Soft
}

func (score Score) String() string {
	return fmt.Sprintf("%dhard/%dsoft", score.Hard, score.Soft)
}

// Evaluate scores an assignment snapshot against the availability index. It is
// pure: lessons are only read, the result is deterministic, and concurrent
// calls on independent snapshots are safe. Lessons without an assigned
// timeslot are excluded from every rule, so partial assignments score without
// error; an unknown student, however, is fatal and propagates.
//
// Assigned lessons are partitioned by day of week and sorted by start time
// (stable, so equal starts keep their input order), then each constraint runs
// per day group and the weighted results are summed
func Evaluate(lessons []Lesson, index AvailabilityIndex) (Score, error) {
	dayGroups := make(map[DayOfWeek][]Lesson)
	for _, lesson := range lessons {
		if lesson.Timeslot == nil {
			continue
		}
		day := lesson.Timeslot.Day
		dayGroups[day] = append(dayGroups[day], lesson)
	}

	var score Score
	for _, dayGroup := range dayGroups {
		slices.SortStableFunc(dayGroup, func(a, b Lesson) int {
			return a.Timeslot.Start.Sub(b.Timeslot.Start)
		})

		for _, constraint := range constraints() {
			points, err := constraint.apply(dayGroup, index)
			if err != nil {
				return Score{}, err
			}

			switch {
			case constraint.hard:
				score.Hard -= points
			case constraint.reward:
				score.Soft += points
			default:
				score.Soft -= points
			}
		}
	}

	return score, nil
}
