// Package config loads the gridgallery configuration from
// $GRIDGALLERY_HOME/config.yaml, a project-local overlay and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/logging"
	"github.com/rshade/gridgallery/internal/render"
)

// Environment variables read by the configuration.
const (
	EnvHome         = "GRIDGALLERY_HOME"
	EnvProjectDir   = "GRIDGALLERY_PROJECT_DIR"
	EnvLogLevel     = "GRIDGALLERY_LOG_LEVEL"
	EnvLogFormat    = "GRIDGALLERY_LOG_FORMAT"
	EnvOutputFormat = "GRIDGALLERY_OUTPUT_FORMAT"
)

const (
	dirName        = ".gridgallery"
	configFileName = "config.yaml"
	exportDirName  = "exports"

	// MaxDatasetSize bounds the per-demo size overrides.
	MaxDatasetSize = 100_000

	dirPerm  = 0o750
	filePerm = 0o600
)

// Validation errors.
var (
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("invalid log format")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidDatasetSize = errors.New("invalid dataset size")
)

// Config is the complete gridgallery configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"  json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	// Datasets overrides the generated row count per demo id.
	Datasets map[string]int `yaml:"datasets,omitempty" json:"datasets,omitempty"`

	configPath string
}

// OutputConfig controls the demo and export output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	// PageSize is used by paginated demos when no --page-size is given.
	// Zero keeps each demo's first offered size.
	PageSize  int    `yaml:"page_size,omitempty" json:"page_size,omitempty"`
	ExportDir string `yaml:"export_dir"          json:"export_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: string(render.FormatTable),
			ExportDir:     filepath.Join(Dir(), exportDirName),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatConsole,
		},
		configPath: Path(),
	}
}

// New returns the defaults overlaid with the config file and the
// environment. A missing or unreadable file leaves the defaults in place.
func New() *Config {
	cfg := Default()
	_ = cfg.Load()
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// Dir returns the configuration directory: $GRIDGALLERY_HOME, or
// ~/.gridgallery.
func Dir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), dirName)
	}
	return filepath.Join(home, dirName)
}

// Path returns the global configuration file path.
func Path() string {
	return filepath.Join(Dir(), configFileName)
}

// LoadDotEnv loads variables from a .env file in the working directory into
// the process environment. Variables already set are kept.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ConfigPath returns the file Load and Save use.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Load and Save use.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load overlays the config file onto c.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", c.configPath, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes c to its config file, creating the directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), dirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, filePerm); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// ApplyEnv applies the GRIDGALLERY_* overrides found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
}

// DatasetSize returns the configured row count for a demo, or 0 for the
// demo default.
func (c *Config) DatasetSize(id string) int {
	return c.Datasets[id]
}

// CheckDatasetSize reports whether n is a valid row count override for the
// demo id.
func CheckDatasetSize(id string, n int) error {
	if n < 1 || n > MaxDatasetSize {
		return fmt.Errorf("datasets.%s: %w: %d (1..%d)", id, ErrInvalidDatasetSize, n, MaxDatasetSize)
	}
	return nil
}

// Validate checks every section, returning all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if _, err := render.ParseFormat(c.Output.DefaultFormat); err != nil {
		errs = append(errs, fmt.Errorf("output.default_format: %w", err))
	}
	if c.Output.PageSize < 0 {
		errs = append(errs, fmt.Errorf("output.page_size: %w: %d", ErrInvalidPageSize, c.Output.PageSize))
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}

	ids := make([]string, 0, len(c.Datasets))
	for id := range c.Datasets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := demo.Get(id); err != nil {
			errs = append(errs, fmt.Errorf("datasets: %w", err))
			continue
		}
		if err := CheckDatasetSize(id, c.Datasets[id]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
