package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every environment override.
const envPrefix = "PAGENAV_"

// envOverrides lists the settings that can be overridden from the environment.
// Unset variables leave the pointers nil.
type envOverrides struct {
	PageSize    *int    `env:"PAGE_SIZE"`
	SeriesWidth *int    `env:"SERIES_WIDTH"`
	PageParam   *string `env:"PAGE_PARAM"`
	Output      *string `env:"OUTPUT"`
	Language    *string `env:"LANGUAGE"`
	CatalogFile *string `env:"CATALOG_FILE"`
	LogLevel    *string `env:"LOG_LEVEL"`
	LogFormat   *string `env:"LOG_FORMAT"`
	LogFile     *string `env:"LOG_FILE"`
}

// ApplyEnv applies PAGENAV_* overrides found in environ, a list of KEY=VALUE
// pairs as returned by os.Environ.
func (c *Config) ApplyEnv(environ []string) error {
	var o envOverrides
	opts := env.Options{
		Prefix:      envPrefix,
		Environment: env.ToMap(environ),
	}
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("parsing environment overrides: %w", err)
	}

	setInt(&c.Pagination.PageSize, o.PageSize)
	setInt(&c.Pagination.SeriesWidth, o.SeriesWidth)
	setString(&c.Pagination.PageParam, o.PageParam)
	setString(&c.Output.DefaultFormat, o.Output)
	setString(&c.Output.Language, o.Language)
	setString(&c.Catalog.File, o.CatalogFile)
	setString(&c.Logging.Level, o.LogLevel)
	setString(&c.Logging.Format, o.LogFormat)
	setString(&c.Logging.File, o.LogFile)
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
