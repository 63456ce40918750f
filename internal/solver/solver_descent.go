package solver

import (
	"errors"
	"math/rand"
	"time"

	"lessonplanner/internal/model"
)

type descentSolver struct {
	rng *rand.Rand
}

func newDescentSolver(seed int64) *descentSolver {
	return &descentSolver{rng: rand.New(rand.NewSource(seed))}
}

func (solver *descentSolver) Solve(
	lessons []model.Lesson,
	score ScoreFunc,
	domains Domains,
	termination Termination,
	progress ProgressFunc,
) ([]model.Lesson, model.Score, error) {
	if len(domains.Timeslots) == 0 || len(domains.Rooms) == 0 {
		return nil, model.Score{}, errors.New("both value domains must be non-empty")
	} else if termination.SpentLimit <= 0 && termination.Iterations == 0 {
		return nil, model.Score{}, errors.New("termination must set a wall-clock or iteration budget")
	}

	//** Build a random full assignment, keeping whatever is already assigned
	current := snapshot(lessons)
	for i := range current {
		if current[i].Timeslot == nil {
			current[i].Timeslot = &domains.Timeslots[solver.rng.Intn(len(domains.Timeslots))]
		}
		if current[i].Room == nil {
			current[i].Room = &domains.Rooms[solver.rng.Intn(len(domains.Rooms))]
		}
	}

	currentScore, err := score(current)
	if err != nil {
		return nil, model.Score{}, err
	}

	best := snapshot(current)
	bestScore := currentScore
	if progress != nil {
		progress(snapshot(best), bestScore)
	}

	// Nothing to schedule: the empty assignment is already the best one
	if len(current) == 0 {
		return best, bestScore, nil
	}

	var deadline time.Time
	if termination.SpentLimit > 0 {
		deadline = time.Now().Add(termination.SpentLimit)
	}

	//** Descend: mutate one decision variable at a time, keep moves that do
	//** not worsen the score and track the strictly best assignment seen
	for iteration := uint64(0); ; iteration++ {
		if termination.Iterations > 0 && iteration >= termination.Iterations {
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}

		picked := solver.rng.Intn(len(current))
		previousTimeslot := current[picked].Timeslot
		previousRoom := current[picked].Room

		if solver.rng.Intn(2) == 0 {
			current[picked].Timeslot = &domains.Timeslots[solver.rng.Intn(len(domains.Timeslots))]
		} else {
			current[picked].Room = &domains.Rooms[solver.rng.Intn(len(domains.Rooms))]
		}

		candidateScore, err := score(current)
		if err != nil {
			return nil, model.Score{}, err
		}

		if candidateScore.Better(currentScore) || candidateScore == currentScore {
			currentScore = candidateScore
			if candidateScore.Better(bestScore) {
				best = snapshot(current)
				bestScore = candidateScore
				if progress != nil {
					progress(snapshot(best), bestScore)
				}
			}
		} else {
			current[picked].Timeslot = previousTimeslot
			current[picked].Room = previousRoom
		}
	}

	return best, bestScore, nil
}

// Lessons carry their decision variables as pointers into the domain slices,
// so copying the slice is enough to freeze an assignment
func snapshot(lessons []model.Lesson) []model.Lesson {
	frozen := make([]model.Lesson, len(lessons))
	copy(frozen, lessons)
	return frozen
}
