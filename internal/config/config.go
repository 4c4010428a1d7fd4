// Package config loads CLI settings from defaults, an optional YAML file
// and PHYSIO_ environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mrsinham/physioreport/internal/render"
)

// EnvPrefix prefixes every environment override, e.g. PHYSIO_LOG_LEVEL.
const EnvPrefix = "PHYSIO"

// Config is the CLI configuration.
type Config struct {
	Log       LogConfig    `mapstructure:"log"`
	Render    RenderConfig `mapstructure:"render"`
	Export    ExportConfig `mapstructure:"export"`
	CacheSize int          `mapstructure:"cache_size"`
}

// LogConfig selects the zap logger level and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	Format string `mapstructure:"format"`
	// Width wraps terminal output; 0 disables wrapping.
	Width int `mapstructure:"width"`
}

// ExportConfig holds the DICOM page raster size.
type ExportConfig struct {
	PageWidth  int `mapstructure:"page_width"`
	PageHeight int `mapstructure:"page_height"`
}

var defaults = map[string]any{
	"log.level":          "info",
	"log.format":         "console",
	"log.output":         "stderr",
	"render.format":      string(render.Text),
	"render.width":       100,
	"export.page_width":  1024,
	"export.page_height": 1448,
	"cache_size":         64,
}

// Load reads the configuration. An empty path skips the file; a path that
// cannot be read is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if !contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s, got %q", strings.Join(logLevels, ", "), c.Log.Level))
	}
	if !contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of %s, got %q", strings.Join(logFormats, ", "), c.Log.Format))
	}
	if _, err := render.ParseFormat(c.Render.Format); err != nil {
		errs = append(errs, fmt.Errorf("render.format: %w", err))
	}
	if c.Render.Width < 0 {
		errs = append(errs, fmt.Errorf("render.width must not be negative, got %d", c.Render.Width))
	}
	if c.Export.PageWidth < 256 || c.Export.PageHeight < 256 {
		errs = append(errs, fmt.Errorf("export page size must be at least 256x256, got %dx%d", c.Export.PageWidth, c.Export.PageHeight))
	}
	if c.CacheSize < 1 {
		errs = append(errs, fmt.Errorf("cache_size must be positive, got %d", c.CacheSize))
	}
	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
