package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexLookups(t *testing.T) {
	// Arrange
	hannesWindows := []AvailabilityWindow{
		window("Innsbruck", Monday, "14:00", "16:00"),
		window("Sistrans", Wednesday, "16:00", "18:00"),
	}
	index := testIndex(t,
		Student{Name: "Hannes", Duration: 30, Windows: hannesWindows},
		Student{Name: "Anna", Duration: 45, Windows: []AvailabilityWindow{window("Innsbruck", Friday, "08:00", "10:00")}},
	)

	// Act
	windows, err := index.WindowsFor("Hannes")
	assert.Nil(t, err)
	duration, err := index.DurationFor("Anna")
	assert.Nil(t, err)

	// Assert: windows keep their insertion order
	assert.Equal(t, hannesWindows, windows)
	assert.Equal(t, 45, duration)
}

func TestIndexUnknownStudent(t *testing.T) {
	// Arrange
	index := testIndex(t,
		Student{Name: "Hannes", Duration: 30, Windows: []AvailabilityWindow{window("Innsbruck", Monday, "14:00", "16:00")}},
	)

	// Act
	_, windowsErr := index.WindowsFor("Ghost")
	_, durationErr := index.DurationFor("Ghost")

	// Assert
	var unknown *UnknownStudentError
	assert.ErrorAs(t, windowsErr, &unknown)
	assert.ErrorAs(t, durationErr, &unknown)
}

func TestIndexDuplicateDeclarations(t *testing.T) {
	// Arrange: the same student declared twice
	first := window("Innsbruck", Monday, "14:00", "16:00")
	second := window("Sistrans", Tuesday, "10:00", "12:00")
	index := testIndex(t,
		Student{Name: "Hannes", Duration: 30, Windows: []AvailabilityWindow{first}},
		Student{Name: "Hannes", Duration: 45, Windows: []AvailabilityWindow{second}},
	)

	// Act
	windows, err := index.WindowsFor("Hannes")
	assert.Nil(t, err)
	duration, err := index.DurationFor("Hannes")
	assert.Nil(t, err)

	// Assert: windows accumulate, the duration takes the last declared value
	assert.Equal(t, []AvailabilityWindow{first, second}, windows)
	assert.Equal(t, 45, duration)
}

func TestIndexRejectsInvalidStudents(t *testing.T) {
	t.Run("missing duration", func(t *testing.T) {
		_, err := NewAvailabilityIndex([]Student{
			{Name: "Hannes", Windows: []AvailabilityWindow{window("Innsbruck", Monday, "14:00", "16:00")}},
		})
		assert.ErrorContains(t, err, "Hannes")
	})

	t.Run("missing windows", func(t *testing.T) {
		_, err := NewAvailabilityIndex([]Student{{Name: "Hannes", Duration: 30}})
		assert.ErrorContains(t, err, "Hannes")
	})
}
