package model

import "fmt"

type availabilityIndex struct {
	windows   map[string][]AvailabilityWindow
	durations map[string]int
}

func newAvailabilityIndex(students []Student) (*availabilityIndex, error) {
	index := &availabilityIndex{
		windows:   make(map[string][]AvailabilityWindow),
		durations: make(map[string]int),
	}

	for _, student := range students {
		if student.Duration <= 0 {
			return nil, fmt.Errorf("student %v has no positive lesson duration: %v", student.Name, student.Duration)
		} else if len(student.Windows) == 0 {
			return nil, fmt.Errorf("student %v has no availability windows", student.Name)
		}

		// Windows accumulate across declarations, while a repeated duration
		// declaration overwrites the previous one (last-write-wins)
		index.windows[student.Name] = append(index.windows[student.Name], student.Windows...)
		index.durations[student.Name] = student.Duration
	}

	return index, nil
}

func (index *availabilityIndex) WindowsFor(student string) ([]AvailabilityWindow, error) {
	windows, ok := index.windows[student]
	if !ok {
		return nil, &UnknownStudentError{Student: student}
	}
	return windows, nil
}

func (index *availabilityIndex) DurationFor(student string) (int, error) {
	duration, ok := index.durations[student]
	if !ok {
		return 0, &UnknownStudentError{Student: student}
	}
	return duration, nil
}
