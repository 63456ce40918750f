package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"lessonplanner/internal/model"
)

const (
	executablePath = "../../bin/lessonplanner"
	testDirectory  = "../../test/plans/"
)

type TestMetadata struct {
	Name     string
	Students int
	Lessons  int
	Rooms    int
}

type BenchmarkResult struct {
	Grid          string
	Budget        time.Duration
	Test          TestMetadata
	Duration      int64
	Memory        float32
	CpuPercentage int64
}

func main() {
	tests := getTests()
	grids := []string{"fixed", "tight"}
	budgets := []time.Duration{time.Second, 3 * time.Second, 10 * time.Second}
	results := make([]BenchmarkResult, 0, len(tests)*len(grids)*len(budgets))

	for _, test := range tests {
		for _, grid := range grids {
			for _, budget := range budgets {
				fmt.Printf("Benchmarking test \"%v\" with grid \"%v\" and budget \"%v\"\n", test.Name, grid, budget)

				duration, maxMemory, cpuPercentage := measure(grid, budget, test.Name)

				results = append(results, BenchmarkResult{
					Grid:          grid,
					Budget:        budget,
					Test:          test,
					Duration:      duration,
					Memory:        maxMemory,
					CpuPercentage: cpuPercentage,
				})
			}
		}
	}

	toCsv(results)
}

func getTests() []TestMetadata {
	testFiles, err := os.ReadDir(testDirectory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	tests := make([]TestMetadata, 0, len(testFiles))
	for _, file := range testFiles {
		filename := testDirectory + file.Name()
		input, err := model.LoadPlanFile(filename)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}

		tests = append(tests, TestMetadata{
			Name:     filename,
			Students: len(input.Students),
			Lessons:  len(input.Lessons),
			Rooms:    len(input.Rooms),
		})
	}

	return tests
}

func measure(grid string, budget time.Duration, testFile string) (duration int64, maxMemory float32, cpuPercentage int64) {
	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "-grid", grid, "-budget", budget.String(), "-seed", "1", "-file", testFile)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	if cmd.ProcessState.ExitCode() != 0 {
		log.Fatalf("an error occurred during the execution of \"lessonplanner\" at test \"%v\" using grid \"%v\" and budget \"%v\": %v\n", testFile, grid, budget, stdErr.String())
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Grid", "Budget", "Test", "Students", "Lessons", "Rooms", "Duration(ms)", "Memory(MB)", "CPU(%)"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.Grid,
			result.Budget.String(),
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Students),
			fmt.Sprintf("%d", result.Test.Lessons),
			fmt.Sprintf("%d", result.Test.Rooms),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

// parseDuration converts a "h:mm:ss.hh" or "m:ss.hh" string to milliseconds
func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	if len(parts) != 2 && len(parts) != 3 {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}

	hours := 0
	if len(parts) == 3 {
		hours = lo.Must(strconv.Atoi(parts[0]))
	}
	minutes := lo.Must(strconv.Atoi(parts[len(parts)-2]))

	secondsParts := strings.Split(parts[len(parts)-1], ".")
	seconds := lo.Must(strconv.Atoi(secondsParts[0]))
	hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))

	return int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / 1024
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
