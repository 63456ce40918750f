package model

import "fmt"

// UnknownStudentError is returned when a lesson references a student that was
// never loaded with a duration and availability windows
type UnknownStudentError struct {
	Student string
}

func (err *UnknownStudentError) Error() string {
	return fmt.Sprintf("unknown student: %v", err.Student)
}

// AvailabilityIndex is the read-only lookup structure built once during loading.
// It must be passed explicitly into every evaluation so that scoring stays
// hermetic; it is never reachable through package-level state
type AvailabilityIndex interface {
	// Returns the student's availability windows in insertion order
	WindowsFor(student string) ([]AvailabilityWindow, error)
	// Returns the student's lesson duration in minutes
	DurationFor(student string) (int, error)
}

func NewAvailabilityIndex(students []Student) (AvailabilityIndex, error) {
	return newAvailabilityIndex(students)
}
