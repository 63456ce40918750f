package model

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

const (
	defaultSubject      = "Piano"
	defaultStudentGroup = "Year 1"
)

// ModelInput is everything a solving run needs: the loaded students, the room
// domain in first-seen order and one unassigned lesson per student block
type ModelInput struct {
	Students []Student
	Rooms    []Room
	Lessons  []Lesson
}

// LoadPlan parses the line-oriented plan format:
//
//	+<name>            begins a student block
//	.<minutes>         sets the student's lesson duration
//	-<roomName>        sets the room context for the following lines
//	MO 14:00-16:00     appends an availability window in the current room
//	(blank line)       finalizes one lesson and closes the block
//
// Any malformed line aborts the load with the offending line in the error
func LoadPlan(reader io.Reader) (ModelInput, error) {
	var input ModelInput

	var id uint64
	var student *Student
	var room *Room
	seenRooms := make(map[Room]bool)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			if student == nil {
				continue
			}
			input.Students = append(input.Students, *student)
			input.Lessons = append(input.Lessons, Lesson{
				ID:           id,
				Subject:      defaultSubject,
				Student:      student.Name,
				StudentGroup: defaultStudentGroup,
			})
			id++
			student = nil
			room = nil
			continue
		}

		switch line[0] {
		case '+':
			student = &Student{Name: line[1:]}
		case '.':
			duration, err := strconv.Atoi(line[1:])
			if err != nil {
				return ModelInput{}, fmt.Errorf("invalid duration line %q: %v", line, err)
			}
			if student == nil {
				return ModelInput{}, fmt.Errorf("duration line %q outside a student block", line)
			}
			student.Duration = duration
		case '-':
			room = &Room{Name: line[1:]}
			if !seenRooms[*room] {
				seenRooms[*room] = true
				input.Rooms = append(input.Rooms, *room)
			}
		default:
			window, err := parseWindowLine(line, room)
			if err != nil {
				return ModelInput{}, err
			}
			if student == nil {
				return ModelInput{}, fmt.Errorf("availability line %q outside a student block", line)
			}
			student.Windows = append(student.Windows, window)
		}
	}
	if err := scanner.Err(); err != nil {
		return ModelInput{}, err
	}

	// A missing trailing blank line still closes the last block
	if student != nil {
		input.Students = append(input.Students, *student)
		input.Lessons = append(input.Lessons, Lesson{
			ID:           id,
			Subject:      defaultSubject,
			Student:      student.Name,
			StudentGroup: defaultStudentGroup,
		})
	}

	return input, nil
}

func LoadPlanFile(path string) (ModelInput, error) {
	file, err := os.Open(path)
	if err != nil {
		return ModelInput{}, err
	}
	defer file.Close()

	return LoadPlan(file)
}

func parseWindowLine(line string, room *Room) (AvailabilityWindow, error) {
	if room == nil {
		return AvailabilityWindow{}, fmt.Errorf("availability line %q before any room line", line)
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return AvailabilityWindow{}, fmt.Errorf("invalid availability line %q", line)
	}

	day, err := ParseDayOfWeek(fields[0])
	if err != nil {
		return AvailabilityWindow{}, fmt.Errorf("invalid availability line %q: %v", line, err)
	}

	startStr, endStr, found := strings.Cut(fields[1], "-")
	if !found {
		return AvailabilityWindow{}, fmt.Errorf("invalid time range in line %q", line)
	}
	start, err := ParseClock(startStr)
	if err != nil {
		return AvailabilityWindow{}, fmt.Errorf("invalid time range in line %q: %v", line, err)
	}
	end, err := ParseClock(endStr)
	if err != nil {
		return AvailabilityWindow{}, fmt.Errorf("invalid time range in line %q: %v", line, err)
	}

	return AvailabilityWindow{Room: *room, Day: day, Start: start, End: end}, nil
}

type windowDocument struct {
	Room  string
	Day   string
	Start string
	End   string
}

type studentDocument struct {
	Name         string
	Duration     int
	Availability []windowDocument
}

type problemDocument struct {
	Subject      string
	StudentGroup string `mapstructure:"studentGroup"`
	Students     []studentDocument
}

// InputFromJson loads the same problem data from a structured JSON document
func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var document problemDocument
	if err := mapstructure.Decode(inputJson, &document); err != nil {
		return ModelInput{}, err
	}

	subject := document.Subject
	if subject == "" {
		subject = defaultSubject
	}
	studentGroup := document.StudentGroup
	if studentGroup == "" {
		studentGroup = defaultStudentGroup
	}

	var input ModelInput
	seenRooms := make(map[Room]bool)

	for id, studentDoc := range document.Students {
		student := Student{
			Name:     studentDoc.Name,
			Duration: studentDoc.Duration,
		}

		for _, windowDoc := range studentDoc.Availability {
			day, err := ParseDayOfWeek(windowDoc.Day)
			if err != nil {
				return ModelInput{}, fmt.Errorf("student %v: %v", studentDoc.Name, err)
			}
			start, err := ParseClock(windowDoc.Start)
			if err != nil {
				return ModelInput{}, fmt.Errorf("student %v: %v", studentDoc.Name, err)
			}
			end, err := ParseClock(windowDoc.End)
			if err != nil {
				return ModelInput{}, fmt.Errorf("student %v: %v", studentDoc.Name, err)
			}

			room := Room{Name: windowDoc.Room}
			if !seenRooms[room] {
				seenRooms[room] = true
				input.Rooms = append(input.Rooms, room)
			}

			student.Windows = append(student.Windows, AvailabilityWindow{
				Room:  room,
				Day:   day,
				Start: start,
				End:   end,
			})
		}

		input.Students = append(input.Students, student)
		input.Lessons = append(input.Lessons, Lesson{
			ID:           uint64(id),
			Subject:      subject,
			Student:      student.Name,
			StudentGroup: studentGroup,
		})
	}

	return input, nil
}

// StudentNames lists the loaded student names in declaration order
func (input ModelInput) StudentNames() []string {
	return lo.Map(input.Students, func(student Student, _ int) string { return student.Name })
}
