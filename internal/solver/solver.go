package solver

import (
	"time"

	"lessonplanner/internal/model"
)

// ScoreFunc scores one assignment snapshot. The solver guarantees it never
// mutates a snapshot while it is being scored
type ScoreFunc func(lessons []model.Lesson) (model.Score, error)

// ProgressFunc is invoked with a copy of the assignment each time a strictly
// improving solution is found
type ProgressFunc func(lessons []model.Lesson, score model.Score)

// Domains holds the legal values of the two decision variables
type Domains struct {
	Timeslots []model.Timeslot
	Rooms     []model.Room
}

// Termination bounds a solving run. A zero SpentLimit means no wall-clock
// budget and zero Iterations means no iteration budget; at least one of the
// two must be set
type Termination struct {
	SpentLimit time.Duration
	Iterations uint64
}

// Solver searches for the best-scoring full assignment of timeslot and room
// to every lesson. Implementations own all mutation of the decision variables;
// the score function only ever reads
type Solver interface {
	Solve(
		lessons []model.Lesson,
		score ScoreFunc,
		domains Domains,
		termination Termination,
		progress ProgressFunc,
	) ([]model.Lesson, model.Score, error)
}

// NewDescentSolver returns the default stochastic-descent solver. The seed
// makes runs reproducible; equal-score moves are accepted so plateaus can be
// crossed
func NewDescentSolver(seed int64) Solver {
	return newDescentSolver(seed)
}
