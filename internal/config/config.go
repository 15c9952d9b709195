package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagenav/internal/pagination"
)

// Defaults written by `pagenav config init` and used when no file exists.
const (
	CurrentSchemaVersion = "1.0.0"
	DefaultOutputFormat  = "text"
	DefaultLanguage      = "en"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	configFileName       = "config.yaml"
)

// Configuration errors.
var (
	ErrUnsupportedSchema = errors.New("unsupported config schema version")
	ErrUnknownKey        = errors.New("unknown configuration key")
)

// Config is the pagenav configuration file.
type Config struct {
	SchemaVersion string           `yaml:"schema_version" validate:"required"`
	Pagination    PaginationConfig `yaml:"pagination"`
	Output        OutputConfig     `yaml:"output"`
	Catalog       CatalogConfig    `yaml:"catalog"`
	Logging       LoggingConfig    `yaml:"logging"`

	configPath string
	loadErr    error
}

// PaginationConfig holds the defaults applied to every paginated listing.
type PaginationConfig struct {
	PageSize    int    `yaml:"page_size"    validate:"min=1,max=1000"`
	SeriesWidth int    `yaml:"series_width" validate:"min=1,max=99"`
	PageParam   string `yaml:"page_param"   validate:"required,printascii,excludesall=&?#"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" validate:"oneof=text table html json yaml"`
	Language      string `yaml:"language"       validate:"bcp47_language_tag"`
}

// CatalogConfig points at the product catalog used by `catalog` and `browse`.
// With no file, a seeded demo catalog of SeedCount products is used.
type CatalogConfig struct {
	File      string `yaml:"file,omitempty"`
	SeedCount int    `yaml:"seed_count"     validate:"min=0,max=1000000"`
}

// Params converts the pagination section into pagination.Params for page.
func (p PaginationConfig) Params(page int) pagination.Params {
	return pagination.Params{
		Page:        page,
		PageSize:    p.PageSize,
		SeriesWidth: p.SeriesWidth,
	}
}

// Default returns a Config holding only default values.
func Default() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Pagination: PaginationConfig{
			PageSize:    pagination.DefaultPageSize,
			SeriesWidth: pagination.DefaultSeriesWidth,
			PageParam:   "page",
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Language:      DefaultLanguage,
		},
		Catalog: CatalogConfig{
			SeedCount: 100,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New returns the configuration at the default path layered with environment
// overrides. A missing file is not an error. A file that cannot be read or
// parsed leaves the defaults in place and is reported by Validate.
func New() *Config {
	path, _ := DefaultConfigPath()

	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
		cfg.configPath = path
		cfg.loadErr = err
	}

	if err := cfg.ApplyEnv(os.Environ()); err != nil && cfg.loadErr == nil {
		cfg.loadErr = err
	}
	return cfg
}

// DefaultConfigPath returns the path of the global configuration file.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the configuration file at path on top of the defaults. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigPath returns the file the configuration was loaded from and is saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file used by Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no config path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate reports load errors, field constraint violations and schema
// versions this build cannot read.
func (c *Config) Validate() error {
	if c.loadErr != nil {
		return c.loadErr
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	v, err := semver.NewVersion(c.SchemaVersion)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, c.SchemaVersion, err)
	}
	current := semver.MustParse(CurrentSchemaVersion)
	if v.Major() != current.Major() {
		return fmt.Errorf("%w: %s (this build reads %d.x)", ErrUnsupportedSchema, v, current.Major())
	}
	return nil
}

// field describes one key addressable by Get and Set.
type field struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func stringField(ptr func(c *Config) *string) field {
	return field{
		get: func(c *Config) string { return *ptr(c) },
		set: func(c *Config, v string) error { *ptr(c) = v; return nil },
	}
}

func intField(ptr func(c *Config) *int) field {
	return field{
		get: func(c *Config) string { return strconv.Itoa(*ptr(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("expected an integer, got %q", v)
			}
			*ptr(c) = n
			return nil
		},
	}
}

//nolint:gochecknoglobals // Static lookup table of addressable keys.
var fields = map[string]field{
	"schema_version":          stringField(func(c *Config) *string { return &c.SchemaVersion }),
	"pagination.page_size":    intField(func(c *Config) *int { return &c.Pagination.PageSize }),
	"pagination.series_width": intField(func(c *Config) *int { return &c.Pagination.SeriesWidth }),
	"pagination.page_param":   stringField(func(c *Config) *string { return &c.Pagination.PageParam }),
	"output.default_format":   stringField(func(c *Config) *string { return &c.Output.DefaultFormat }),
	"output.language":         stringField(func(c *Config) *string { return &c.Output.Language }),
	"catalog.file":            stringField(func(c *Config) *string { return &c.Catalog.File }),
	"catalog.seed_count":      intField(func(c *Config) *int { return &c.Catalog.SeedCount }),
	"logging.level":           stringField(func(c *Config) *string { return &c.Logging.Level }),
	"logging.format":          stringField(func(c *Config) *string { return &c.Logging.Format }),
	"logging.file":            stringField(func(c *Config) *string { return &c.Logging.File }),
}

// Keys returns every key accepted by Get and Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get returns the value of a dotted key such as "pagination.page_size".
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return f.get(c), nil
}

// Set assigns a dotted key. The result is not validated; call Validate.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := f.set(c, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}
