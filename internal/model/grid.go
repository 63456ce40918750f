package model

// CandidateTimeslots derives, per day of week, the minimal envelope covering
// every availability window of the students that have a lesson, and expands it
// into grid-granularity timeslots. Days no lesson can use yield no slots,
// which keeps the solver's timeslot domain as tight as possible
func CandidateTimeslots(lessons []Lesson, index AvailabilityIndex) ([]Timeslot, error) {
	slots := make([]Timeslot, 0)

	for _, day := range Days() {
		var start, end TimeOfDay
		found := false

		for _, lesson := range lessons {
			windows, err := index.WindowsFor(lesson.Student)
			if err != nil {
				return nil, err
			}

			for _, window := range windows {
				if window.Day != day {
					continue
				}
				if !found || window.Start < start {
					start = window.Start
				}
				if !found || window.End > end {
					end = window.End
				}
				found = true
			}
		}

		if !found {
			continue
		}

		for current := start; current < end; current = current.AddMinutes(GridGranularity) {
			slots = append(slots, NewGridTimeslot(day, current))
		}
	}

	return slots, nil
}

// FixedGrid expands [start, end) into grid-granularity timeslots on all seven
// days, regardless of where the loaded students are actually available
func FixedGrid(start, end TimeOfDay) []Timeslot {
	slots := make([]Timeslot, 0, 7*(end.Sub(start)/GridGranularity))
	for _, day := range Days() {
		for current := start; current < end; current = current.AddMinutes(GridGranularity) {
			slots = append(slots, NewGridTimeslot(day, current))
		}
	}
	return slots
}
