package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	GridFixed = "fixed"
	GridTight = "tight"
)

// Config carries the solving-run settings. Values come from defaults, an
// optional .env file and environment variables, in that order; CLI flags may
// override them afterwards
type Config struct {
	Solver SolverConfig
	Grid   GridConfig
	Log    LogConfig
}

type SolverConfig struct {
	Budget        time.Duration
	MaxIterations uint64
	Seed          int64
}

// GridConfig selects the timeslot domain: the fixed seven-day grid between
// Start and End, or the tight per-day grid derived from availability
type GridConfig struct {
	Mode  string
	Start string
	End   string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Solver = SolverConfig{
		Budget:        parseDuration(v.GetString("SOLVER_BUDGET"), 3*time.Second),
		MaxIterations: v.GetUint64("SOLVER_MAX_ITERATIONS"),
		Seed:          v.GetInt64("SOLVER_SEED"),
	}

	cfg.Grid = GridConfig{
		Mode:  v.GetString("GRID_MODE"),
		Start: v.GetString("GRID_START"),
		End:   v.GetString("GRID_END"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SOLVER_BUDGET", "3s")
	v.SetDefault("SOLVER_MAX_ITERATIONS", 0)
	v.SetDefault("SOLVER_SEED", 0)

	v.SetDefault("GRID_MODE", GridFixed)
	v.SetDefault("GRID_START", "08:00")
	v.SetDefault("GRID_END", "19:00")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
