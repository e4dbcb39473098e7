package config

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/halfmap/internal/error"
	"github.com/saeidalz13/halfmap/models/halfmap"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	FormatText = "text"
	FormatJSON = "json"
)

const (
	EnvStage       = "STAGE"
	EnvMaxAttempts = "HALFMAP_MAX_ATTEMPTS"
	EnvWorkers     = "HALFMAP_WORKERS"
	EnvSeed        = "HALFMAP_SEED"
	EnvCount       = "HALFMAP_COUNT"
	EnvFormat      = "HALFMAP_FORMAT"
)

type Config struct {
	Stage       string
	MaxAttempts int
	Workers     int
	Seed        *uint64
	Count       int
	Format      string
}

// Load reads the configuration from the environment. Outside prod the
// values in envFile fill in whatever the environment does not set; a
// missing envFile is not an error.
func Load(envFile string) (Config, error) {
	stage := os.Getenv(EnvStage)
	if stage == "" {
		stage = StageDev
	}
	if stage != StageDev && stage != StageProd {
		return Config{}, cerr.ErrInvalidStage(stage)
	}

	fileEnv := map[string]string{}
	if stage != StageProd && envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
		if values != nil {
			fileEnv = values
		}
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileEnv[key]
	}

	cfg := Config{
		Stage:  stage,
		Format: FormatText,
	}

	var err error
	if cfg.MaxAttempts, err = intOrDefault(EnvMaxAttempts, lookup(EnvMaxAttempts), halfmap.DefaultMaxAttempts, halfmap.Unbounded); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = intOrDefault(EnvWorkers, lookup(EnvWorkers), runtime.NumCPU(), 1); err != nil {
		return Config{}, err
	}
	if cfg.Count, err = intOrDefault(EnvCount, lookup(EnvCount), 1, 1); err != nil {
		return Config{}, err
	}

	if seed := lookup(EnvSeed); seed != "" {
		parsed, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return Config{}, cerr.ErrInvalidEnvInt(EnvSeed, seed, 0)
		}
		cfg.Seed = &parsed
	}

	if format := lookup(EnvFormat); format != "" {
		if format != FormatText && format != FormatJSON {
			return Config{}, cerr.ErrInvalidFormat(format)
		}
		cfg.Format = format
	}

	return cfg, nil
}

func (c Config) GeneratorOptions() []halfmap.Option {
	opts := []halfmap.Option{
		halfmap.WithMaxAttempts(c.MaxAttempts),
		halfmap.WithWorkers(c.Workers),
	}
	if c.Seed != nil {
		opts = append(opts, halfmap.WithSeed(*c.Seed))
	}
	return opts
}

func intOrDefault(key, value string, fallback, lowest int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < lowest {
		return 0, cerr.ErrInvalidEnvInt(key, value, lowest)
	}
	return n, nil
}
