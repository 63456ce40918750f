package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"lessonplanner/internal/model"
	"lessonplanner/internal/solver"
	"lessonplanner/pkg/config"
	"lessonplanner/pkg/logger"
)

var (
	validGrids   = []string{config.GridFixed, config.GridTight}
	validFormats = []string{"plan", "json"}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file")
	formatPtr := flag.String("format", "", `Input file format. Allowed values are "plan" (line-oriented availability plan) and "json"; inferred from the file extension when empty`)
	gridPtr := flag.String("grid", cfg.Grid.Mode, `Timeslot domain to search. Allowed values are:
- "fixed" (every day between the configured grid bounds) and
- "tight" (per-day envelopes derived from the loaded availability), where "fixed" is the default`)
	budgetPtr := flag.Duration("budget", cfg.Solver.Budget, "Wall-clock solving budget")
	iterationsPtr := flag.Uint64("iterations", cfg.Solver.MaxIterations, "Iteration budget; 0 means unlimited")
	seedPtr := flag.Int64("seed", cfg.Solver.Seed, "Random seed; 0 picks a time-based seed")
	outFilePathPtr := flag.String("out", "", "Path to the file where the timetable will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()

	filePath := *filePathPtr
	format := strings.ToLower(*formatPtr)
	grid := strings.ToLower(*gridPtr)
	outFile := *outFilePathPtr

	if format == "" {
		format = inferFormat(filePath)
	}

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if !slices.Contains(validGrids, grid) {
		log.Fatalf("%v is not a valid grid mode", grid)
	} else if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid input format", format)
	} else if *budgetPtr <= 0 && *iterationsPtr == 0 {
		log.Fatal("a wall-clock or iteration budget must be specified")
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer zl.Sync()

	// Extract input
	var input model.ModelInput
	if format == "json" {
		input, err = model.InputFromJson(filePath)
	} else {
		input, err = model.LoadPlanFile(filePath)
	}
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	index, err := model.NewAvailabilityIndex(input.Students)
	if err != nil {
		log.Fatalf("invalid input data: %v", err)
	}

	zl.Info("input loaded",
		zap.Strings("students", input.StudentNames()),
		zap.Int("lessons", len(input.Lessons)),
		zap.Int("rooms", len(input.Rooms)),
	)

	// Build the value domains
	domains := solver.Domains{Rooms: input.Rooms}
	if grid == config.GridTight {
		domains.Timeslots, err = model.CandidateTimeslots(input.Lessons, index)
		if err != nil {
			log.Fatalf("cannot derive candidate timeslots: %v", err)
		}
	} else {
		gridStart, err := model.ParseClock(cfg.Grid.Start)
		if err != nil {
			log.Fatalf("invalid grid start: %v", err)
		}
		gridEnd, err := model.ParseClock(cfg.Grid.End)
		if err != nil {
			log.Fatalf("invalid grid end: %v", err)
		}
		domains.Timeslots = model.FixedGrid(gridStart, gridEnd)
	}

	seed := *seedPtr
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Solve
	engine := solver.NewDescentSolver(seed)
	scoreFn := func(lessons []model.Lesson) (model.Score, error) {
		return model.Evaluate(lessons, index)
	}
	progress := func(lessons []model.Lesson, score model.Score) {
		zl.Info("improved assignment found", zap.String("score", score.String()))
	}

	started := time.Now()
	best, bestScore, err := engine.Solve(
		input.Lessons,
		scoreFn,
		domains,
		solver.Termination{SpentLimit: *budgetPtr, Iterations: *iterationsPtr},
		progress,
	)
	if err != nil {
		log.Fatalf("an error occurred during solving: %v", err)
	}

	zl.Info("solving finished",
		zap.String("score", bestScore.String()),
		zap.Bool("feasible", bestScore.Feasible()),
		zap.Duration("spent", time.Since(started)),
	)

	// Render the timetable
	timetable, err := model.FormatTimetable(best, index)
	if err != nil {
		log.Fatalf("cannot render timetable: %v", err)
	}

	if outFile == "" {
		fmt.Print(timetable)
	} else {
		if err := os.WriteFile(outFile, []byte(timetable), 0666); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}
}

func inferFormat(filePath string) string {
	if strings.HasSuffix(strings.ToLower(filePath), ".json") {
		return "json"
	}
	return "plan"
}
