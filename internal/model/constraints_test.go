package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clock(value string) TimeOfDay {
	t, err := ParseClock(value)
	if err != nil {
		panic(err)
	}
	return t
}

func window(room string, day DayOfWeek, start, end string) AvailabilityWindow {
	return AvailabilityWindow{
		Room:  Room{Name: room},
		Day:   day,
		Start: clock(start),
		End:   clock(end),
	}
}

func testLesson(id uint64, student string, day DayOfWeek, start, room string) Lesson {
	slot := NewGridTimeslot(day, clock(start))
	lesson := Lesson{
		ID:           id,
		Subject:      "Piano",
		Student:      student,
		StudentGroup: "Year 1",
		Timeslot:     &slot,
	}
	if room != "" {
		lesson.Room = &Room{Name: room}
	}
	return lesson
}

func testIndex(t *testing.T, students ...Student) AvailabilityIndex {
	index, err := NewAvailabilityIndex(students)
	assert.Nil(t, err)
	return index
}

func TestNoOverlap(t *testing.T) {
	// Arrange
	index := testIndex(t,
		Student{Name: "Hannes", Duration: 15, Windows: []AvailabilityWindow{window("Innsbruck", Monday, "08:00", "19:00")}},
		Student{Name: "Anna", Duration: 20, Windows: []AvailabilityWindow{window("Innsbruck", Monday, "08:00", "19:00")}},
	)

	t.Run("adjacent lessons overlapping", func(t *testing.T) {
		// 10:30-10:45 followed by 10:40-11:00 is not allowed
		dayGroup := []Lesson{
			testLesson(0, "Hannes", Monday, "10:30", "Innsbruck"),
			testLesson(1, "Anna", Monday, "10:40", "Innsbruck"),
		}

		// Act
		penalty, err := noOverlap(dayGroup, index)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, 1, penalty)
	})

	t.Run("adjacent lessons touching", func(t *testing.T) {
		dayGroup := []Lesson{
			testLesson(0, "Hannes", Monday, "10:30", "Innsbruck"),
			testLesson(1, "Anna", Monday, "10:45", "Innsbruck"),
		}

		// Act
		penalty, err := noOverlap(dayGroup, index)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, 0, penalty)
	})
}

func TestPossibleTimeAndPlace(t *testing.T) {
	// Arrange: Hannes can only be taught in Innsbruck on Monday 14:00-16:00
	index := testIndex(t,
		Student{Name: "Hannes", Duration: 120, Windows: []AvailabilityWindow{window("Innsbruck", Monday, "14:00", "16:00")}},
	)

	scenarios := []struct {
		name    string
		lesson  Lesson
		penalty int
	}{
		{
			name:    "lesson filling the window exactly is feasible",
			lesson:  testLesson(0, "Hannes", Monday, "14:00", "Innsbruck"),
			penalty: 0,
		},
		{
			name:    "lesson spilling past the window end",
			lesson:  testLesson(0, "Hannes", Monday, "14:05", "Innsbruck"),
			penalty: 1,
		},
		{
			name:    "wrong room",
			lesson:  testLesson(0, "Hannes", Monday, "14:00", "Sistrans"),
			penalty: 1,
		},
		{
			name:    "wrong day",
			lesson:  testLesson(0, "Hannes", Tuesday, "14:00", "Innsbruck"),
			penalty: 1,
		},
		{
			name:    "unassigned room does not contribute",
			lesson:  testLesson(0, "Hannes", Monday, "14:00", ""),
			penalty: 0,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			// Act
			penalty, err := possibleTimeAndPlace([]Lesson{scenario.lesson}, index)

			// Assert
			assert.Nil(t, err)
			assert.Equal(t, scenario.penalty, penalty)
		})
	}
}

func TestRoomChangeBreak(t *testing.T) {
	// Arrange
	index := testIndex(t,
		Student{Name: "Hannes", Duration: 30, Windows: []AvailabilityWindow{window("Innsbruck", Monday, "08:00", "19:00")}},
		Student{Name: "Anna", Duration: 30, Windows: []AvailabilityWindow{window("Sistrans", Monday, "08:00", "19:00")}},
	)

	scenarios := []struct {
		name      string
		nextStart string
		nextRoom  string
		penalty   int
	}{
		{name: "no break at all", nextStart: "09:00", nextRoom: "Sistrans", penalty: 25},
		{name: "break shorter than the minimum", nextStart: "09:10", nextRoom: "Sistrans", penalty: 15},
		{name: "break of exactly the minimum", nextStart: "09:25", nextRoom: "Sistrans", penalty: 0},
		{name: "break of exactly the maximum", nextStart: "09:45", nextRoom: "Sistrans", penalty: 0},
		{name: "break longer than the maximum", nextStart: "09:50", nextRoom: "Sistrans", penalty: 5},
		{name: "same room needs no break", nextStart: "09:00", nextRoom: "Innsbruck", penalty: 0},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			// First lesson runs 08:30-09:00 in Innsbruck
			dayGroup := []Lesson{
				testLesson(0, "Hannes", Monday, "08:30", "Innsbruck"),
				testLesson(1, "Anna", Monday, scenario.nextStart, scenario.nextRoom),
			}

			// Act
			penalty, err := roomChangeBreak(dayGroup, index)

			// Assert
			assert.Nil(t, err)
			assert.Equal(t, scenario.penalty, penalty)
		})
	}
}

func TestRoomStability(t *testing.T) {
	// Arrange
	index := testIndex(t,
		Student{Name: "Hannes", Duration: 30, Windows: []AvailabilityWindow{window("Innsbruck", Monday, "08:00", "19:00")}},
	)

	scenarios := []struct {
		name    string
		rooms   []string
		penalty int
	}{
		{name: "single room all day", rooms: []string{"Innsbruck", "Innsbruck", "Innsbruck"}, penalty: 0},
		{name: "one change", rooms: []string{"Innsbruck", "Sistrans"}, penalty: 0},
		{name: "two changes", rooms: []string{"Innsbruck", "Sistrans", "Innsbruck"}, penalty: 100},
		{name: "three changes", rooms: []string{"Innsbruck", "Sistrans", "Innsbruck", "Sistrans"}, penalty: 1000},
		{name: "unassigned rooms never count as changes", rooms: []string{"Innsbruck", "", "Sistrans"}, penalty: 0},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			dayGroup := make([]Lesson, 0, len(scenario.rooms))
			start := clock("08:00")
			for i, room := range scenario.rooms {
				slot := NewGridTimeslot(Monday, start.AddMinutes(i*60))
				lesson := Lesson{ID: uint64(i), Student: "Hannes", Timeslot: &slot}
				if room != "" {
					lesson.Room = &Room{Name: room}
				}
				dayGroup = append(dayGroup, lesson)
			}

			// Act
			penalty, err := roomStability(dayGroup, index)

			// Assert
			assert.Nil(t, err)
			assert.Equal(t, scenario.penalty, penalty)
		})
	}
}

func TestConsecutiveLessons(t *testing.T) {
	// Arrange
	index := testIndex(t,
		Student{Name: "Hannes", Duration: 30, Windows: []AvailabilityWindow{window("Innsbruck", Monday, "08:00", "19:00")}},
		Student{Name: "Anna", Duration: 30, Windows: []AvailabilityWindow{window("Innsbruck", Monday, "08:00", "19:00")}},
	)

	t.Run("zero gap is rewarded", func(t *testing.T) {
		dayGroup := []Lesson{
			testLesson(0, "Hannes", Monday, "08:30", "Innsbruck"),
			testLesson(1, "Anna", Monday, "09:00", "Innsbruck"),
		}

		// Act
		reward, err := consecutiveLessons(dayGroup, index)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, 1, reward)
	})

	t.Run("any gap loses the reward", func(t *testing.T) {
		dayGroup := []Lesson{
			testLesson(0, "Hannes", Monday, "08:30", "Innsbruck"),
			testLesson(1, "Anna", Monday, "09:05", "Innsbruck"),
		}

		// Act
		reward, err := consecutiveLessons(dayGroup, index)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, 0, reward)
	})
}
