// Package config resolves renewstat settings from built-in defaults, an
// optional YAML file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults for a run with no flags and no config file.
const (
	DefaultDataPath  = "global_renewable_energy_production.csv"
	DefaultStartYear = 2018
	DefaultEndYear   = 2022
	DefaultTop       = 5
	DefaultOutputDir = "charts"
	DefaultFormat    = "png"

	DefaultMetric      = "TotalRenewableEnergy"
	DefaultMetricLabel = "Total Renewable Energy Production"
)

// DefaultShareColumns are the energy-type columns summed by the pie chart.
var DefaultShareColumns = []string{"SolarEnergy", "WindEnergy", "HydroEnergy", "OtherRenewableEnergy"}

// ErrInvalidYears is returned when the line chart year range is empty.
var ErrInvalidYears = errors.New("start year is after end year")

// Config is the fully resolved configuration for one run.
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Columns ColumnsConfig `mapstructure:"columns"`
	Line    LineConfig    `mapstructure:"line"`
	Output  OutputConfig  `mapstructure:"output"`
}

// DataConfig locates the input table.
type DataConfig struct {
	Path      string `mapstructure:"path"`
	Delimiter string `mapstructure:"delimiter"`
}

// ColumnsConfig names the columns the charts read.
type ColumnsConfig struct {
	Entity string   `mapstructure:"entity"`
	Year   string   `mapstructure:"year"`
	Metric string   `mapstructure:"metric"`
	Shares []string `mapstructure:"shares"`

	// MetricLabel names the metric on chart titles and axes. Empty means
	// derive it from Metric.
	MetricLabel string `mapstructure:"metric_label"`
}

// LineConfig controls the trend chart.
type LineConfig struct {
	StartYear int `mapstructure:"start_year"`
	EndYear   int `mapstructure:"end_year"`
	Top       int `mapstructure:"top"`
}

// OutputConfig controls where and how charts are written.
type OutputConfig struct {
	Dir      string  `mapstructure:"dir"`
	Format   string  `mapstructure:"format"`
	WidthIn  float64 `mapstructure:"width_in"`
	HeightIn float64 `mapstructure:"height_in"`
	Open     bool    `mapstructure:"open"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"data":       "data.path",
	"delimiter":  "data.delimiter",
	"start-year": "line.start_year",
	"end-year":   "line.end_year",
	"top":        "line.top",
	"out":        "output.dir",
	"format":     "output.format",
	"open":       "output.open",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("data.path", DefaultDataPath)
	v.SetDefault("data.delimiter", ",")
	v.SetDefault("columns.entity", "Country")
	v.SetDefault("columns.year", "Year")
	v.SetDefault("columns.metric", DefaultMetric)
	v.SetDefault("columns.shares", DefaultShareColumns)
	v.SetDefault("line.start_year", DefaultStartYear)
	v.SetDefault("line.end_year", DefaultEndYear)
	v.SetDefault("line.top", DefaultTop)
	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("output.width_in", 12.0)
	v.SetDefault("output.height_in", 7.0)
	v.SetDefault("output.open", false)
	return v
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	cfg, err := Load("", nil)
	if err != nil {
		// Defaults alone always decode and validate.
		panic(err)
	}
	return cfg
}

// Load builds a Config. path may be empty, in which case no file is read.
// Only flags the user explicitly set override file and default values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.Visit(func(f *pflag.Flag) {
			key, ok := flagKeys[f.Name]
			if !ok || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Columns.MetricLabel == "" && cfg.Columns.Metric == DefaultMetric {
		cfg.Columns.MetricLabel = DefaultMetricLabel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that would otherwise fail deep in a renderer.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("data path must not be empty")
	}
	if len([]rune(c.Data.Delimiter)) != 1 {
		return fmt.Errorf("invalid delimiter %q (must be a single character)", c.Data.Delimiter)
	}
	if c.Line.StartYear > c.Line.EndYear {
		return fmt.Errorf("%w: %d > %d", ErrInvalidYears, c.Line.StartYear, c.Line.EndYear)
	}
	if c.Line.Top <= 0 {
		return fmt.Errorf("invalid top: %d (must be positive)", c.Line.Top)
	}
	switch strings.ToLower(c.Output.Format) {
	case "png", "svg", "pdf", "jpg", "jpeg":
	default:
		return fmt.Errorf("unsupported output format %q", c.Output.Format)
	}
	if c.Output.WidthIn <= 0 || c.Output.HeightIn <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g", c.Output.WidthIn, c.Output.HeightIn)
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune. Validate guarantees it has
// exactly one.
func (c *Config) DelimiterRune() rune {
	return []rune(c.Data.Delimiter)[0]
}
