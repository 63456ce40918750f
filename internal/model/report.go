package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// FormatTimetable renders an assignment as one line per lesson, ordered by day
// and start time, in the form "<student>: <start>-<end> (<day>) <room>".
// Lessons still missing a timeslot or room are listed last as unscheduled
func FormatTimetable(lessons []Lesson, index AvailabilityIndex) (string, error) {
	assigned := lo.Filter(lessons, func(lesson Lesson, _ int) bool {
		return lesson.Timeslot != nil && lesson.Room != nil
	})
	unassigned := lo.Filter(lessons, func(lesson Lesson, _ int) bool {
		return lesson.Timeslot == nil || lesson.Room == nil
	})

	slices.SortFunc(assigned, func(a, b Lesson) int {
		if comparison := a.Timeslot.Compare(*b.Timeslot); comparison != 0 {
			return comparison
		}
		return int(a.ID) - int(b.ID)
	})

	var builder strings.Builder
	for _, lesson := range assigned {
		duration, err := index.DurationFor(lesson.Student)
		if err != nil {
			return "", err
		}

		start := lesson.Timeslot.Start
		fmt.Fprintf(&builder, "%v: %v-%v (%v) %v\n",
			lesson.Student, start, start.AddMinutes(duration), lesson.Timeslot.Day, lesson.Room.Name)
	}

	for _, lesson := range unassigned {
		fmt.Fprintf(&builder, "%v: unscheduled\n", lesson.Student)
	}

	return builder.String(), nil
}
