package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "renewstat.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("data", "", "")
	fs.Int("start-year", 0, "")
	fs.Int("end-year", 0, "")
	fs.Int("top", 0, "")
	fs.String("out", "", "")
	fs.String("format", "", "")
	fs.Bool("open", false, "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultDataPath, cfg.Data.Path)
	assert.Equal(t, ",", cfg.Data.Delimiter)
	assert.Equal(t, "Country", cfg.Columns.Entity)
	assert.Equal(t, "Year", cfg.Columns.Year)
	assert.Equal(t, "TotalRenewableEnergy", cfg.Columns.Metric)
	assert.Equal(t, "Total Renewable Energy Production", cfg.Columns.MetricLabel)
	assert.Equal(t, DefaultShareColumns, cfg.Columns.Shares)
	assert.Equal(t, 2018, cfg.Line.StartYear)
	assert.Equal(t, 2022, cfg.Line.EndYear)
	assert.Equal(t, 5, cfg.Line.Top)
	assert.Equal(t, "png", cfg.Output.Format)
	assert.False(t, cfg.Output.Open)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  path: data/energy.tsv
  delimiter: ";"
line:
  start_year: 2000
  top: 3
output:
  format: svg
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "data/energy.tsv", cfg.Data.Path)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, 2000, cfg.Line.StartYear)
	assert.Equal(t, DefaultEndYear, cfg.Line.EndYear)
	assert.Equal(t, 3, cfg.Line.Top)
	assert.Equal(t, "svg", cfg.Output.Format)
	assert.Equal(t, "Country", cfg.Columns.Entity)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "line:\n  start_year: 2000\n  end_year: 2010\n")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--end-year", "2015", "--open"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, 2000, cfg.Line.StartYear, "unset flag must not clobber file value")
	assert.Equal(t, 2015, cfg.Line.EndYear)
	assert.True(t, cfg.Output.Open)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err == nil {
		t.Fatal("Load() should fail for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		is      error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "inverted years",
			mutate:  func(c *Config) { c.Line.StartYear, c.Line.EndYear = 2022, 2018 },
			wantErr: true,
			is:      ErrInvalidYears,
		},
		{
			name:   "single year",
			mutate: func(c *Config) { c.Line.StartYear, c.Line.EndYear = 2020, 2020 },
		},
		{name: "zero top", mutate: func(c *Config) { c.Line.Top = 0 }, wantErr: true},
		{name: "empty delimiter", mutate: func(c *Config) { c.Data.Delimiter = "" }, wantErr: true},
		{name: "long delimiter", mutate: func(c *Config) { c.Data.Delimiter = "::" }, wantErr: true},
		{name: "tab delimiter", mutate: func(c *Config) { c.Data.Delimiter = "\t" }},
		{name: "unknown format", mutate: func(c *Config) { c.Output.Format = "gif" }, wantErr: true},
		{name: "upper-case format", mutate: func(c *Config) { c.Output.Format = "SVG" }},
		{name: "zero width", mutate: func(c *Config) { c.Output.WidthIn = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Validate() error = %v, want errors.Is %v", err, tt.is)
			}
		})
	}
}

func TestLoad_MetricLabel(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "explicit label",
			yaml: "columns:\n  metric_label: Output (TWh)\n",
			want: "Output (TWh)",
		},
		{
			name: "other metric derives its label",
			yaml: "columns:\n  metric: SolarEnergy\n",
			want: "",
		},
		{
			name: "other metric with label",
			yaml: "columns:\n  metric: SolarEnergy\n  metric_label: Solar Output\n",
			want: "Solar Output",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.yaml), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Columns.MetricLabel)
		})
	}
}
