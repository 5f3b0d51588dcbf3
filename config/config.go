// Package config provides environment-driven configuration for mazesolver,
// optionally overlaid by a YAML run file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazesolver/frontier"
	"github.com/katalvlaran/mazesolver/report"
)

// DefaultEnvFile is read by Load when present.
const DefaultEnvFile = ".env"

// MaxParallel bounds the number of mazes solved concurrently.
const MaxParallel = 64

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all run settings. Field tags name the keys of the YAML run file.
type Config struct {
	LogLevel     string   `yaml:"log_level"`
	LogFormat    string   `yaml:"log_format"`
	Mazes        []string `yaml:"mazes"`
	Algorithms   []string `yaml:"algorithms"`
	Format       string   `yaml:"format"`
	OutDir       string   `yaml:"out_dir"`
	ShowExplored bool     `yaml:"show_explored"`
	Print        bool     `yaml:"print"`
	Embed        bool     `yaml:"embed"`
	Parallel     int      `yaml:"parallel"`
	MetricsFile  string   `yaml:"metrics_file"`
}

// Load reads configuration from DefaultEnvFile (if any) and the environment.
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom loads envFile into the process environment without overriding
// variables that are already set, then reads MAZESOLVER_* variables with
// defaults. A missing envFile is not an error.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %q: %w", envFile, err)
		}
	}

	cfg := &Config{
		LogLevel:    envOrDefault("MAZESOLVER_LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("MAZESOLVER_LOG_FORMAT", "text"),
		Mazes:       splitList(envOrDefault("MAZESOLVER_MAZES", "")),
		Algorithms:  splitList(envOrDefault("MAZESOLVER_ALGORITHMS", "dfs,bfs")),
		Format:      envOrDefault("MAZESOLVER_FORMAT", string(report.FormatSummary)),
		OutDir:      envOrDefault("MAZESOLVER_OUT_DIR", ""),
		MetricsFile: envOrDefault("MAZESOLVER_METRICS_FILE", ""),
	}

	var err error
	if cfg.ShowExplored, err = envBool("MAZESOLVER_SHOW_EXPLORED"); err != nil {
		return nil, err
	}
	if cfg.Print, err = envBool("MAZESOLVER_PRINT"); err != nil {
		return nil, err
	}
	if cfg.Embed, err = envBool("MAZESOLVER_EMBED"); err != nil {
		return nil, err
	}

	parallel, err := strconv.Atoi(envOrDefault("MAZESOLVER_PARALLEL", "4"))
	if err != nil {
		return nil, fmt.Errorf("%w: MAZESOLVER_PARALLEL must be an integer", ErrInvalidConfig)
	}
	cfg.Parallel = parallel

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyRunFile overlays the keys present in the YAML file at path onto c.
// Unknown keys are rejected. The result is validated, and c is left
// untouched when parsing or validation fails.
func (c *Config) ApplyRunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open run file: %w", err)
	}
	defer f.Close()

	next := *c
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&next); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse run file %q: %w", path, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}

	*c = next
	return nil
}

// Kinds returns the configured algorithms as frontier kinds, in order.
func (c *Config) Kinds() ([]frontier.Kind, error) {
	kinds := make([]frontier.Kind, 0, len(c.Algorithms))
	for _, a := range c.Algorithms {
		k, err := frontier.ParseKind(a)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Validate checks every field. Callers that mutate a Config (e.g. from flags)
// should validate again.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}

	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: at least one algorithm is required", ErrInvalidConfig)
	}
	if _, err := c.Kinds(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Parallel < 1 || c.Parallel > MaxParallel {
		return fmt.Errorf("%w: parallel must be between 1 and %d", ErrInvalidConfig, MaxParallel)
	}

	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

// envBool parses key with strconv.ParseBool; unset means false.
func envBool(key string) (bool, error) {
	v, err := strconv.ParseBool(envOrDefault(key, "false"))
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrInvalidConfig, key)
	}

	return v, nil
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
