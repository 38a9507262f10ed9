// Package config loads timetable parsing configuration from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/timetable-go/pkg/timetable/grid"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

// Config holds all parsing configuration.
type Config struct {
	// Sections maps section column names to semester numbers.
	Sections map[string]int `yaml:"sections"`
	// SubSectionPrefix is the class prefix of lab batch codes (IT121).
	SubSectionPrefix string `yaml:"sub_section_prefix"`
	// Markers names the header labels of special columns.
	Markers MarkersConfig `yaml:"markers"`
	// MinHeaderMatches is how many section names identify the header row.
	MinHeaderMatches int `yaml:"min_header_matches"`
	// TimeProbe configures the unlabeled time column search.
	TimeProbe TimeProbeConfig `yaml:"time_probe"`
	// AfternoonMaxHour shifts hours 1..N by 12; 0 keeps hours literal.
	AfternoonMaxHour int `yaml:"afternoon_max_hour"`
	// Tables configures workbook table detection.
	Tables TablesConfig `yaml:"tables"`
}

// MarkersConfig names the header labels of the time and slot index columns.
type MarkersConfig struct {
	Time      string `yaml:"time"`
	SlotIndex string `yaml:"slot_index"`
}

// TimeProbeConfig configures the time column fallback.
type TimeProbeConfig struct {
	Rows           int `yaml:"rows"`
	Columns        int `yaml:"columns"`
	FallbackColumn int `yaml:"fallback_column"`
}

// TablesConfig configures table detection in workbooks.
type TablesConfig struct {
	DensityMin       float64 `yaml:"density_min"`
	MinNonemptyCells int     `yaml:"min_nonempty_cells"`
	MaxBlankRows     int     `yaml:"max_blank_rows"`
}

// DefaultConfig returns the configuration matching parser.DefaultRules.
func DefaultConfig() *Config {
	rules := parser.DefaultRules()
	tables := grid.DefaultTableParams()
	return &Config{
		Sections:         rules.Sections,
		SubSectionPrefix: rules.SubSectionPrefix,
		Markers: MarkersConfig{
			Time:      rules.TimeMarker,
			SlotIndex: rules.SlotIndexMarker,
		},
		MinHeaderMatches: rules.MinHeaderMatches,
		TimeProbe: TimeProbeConfig{
			Rows:           rules.TimeProbeRows,
			Columns:        rules.TimeProbeColumns,
			FallbackColumn: rules.FallbackTimeColumn,
		},
		AfternoonMaxHour: rules.AfternoonMaxHour,
		Tables: TablesConfig{
			DensityMin:       tables.DensityMin,
			MinNonemptyCells: tables.MinNonemptyCells,
			MaxBlankRows:     tables.MaxBlankRows,
		},
	}
}

// Load reads a YAML file over the defaults and applies environment overrides.
// An empty path yields the defaults with overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// A sections block replaces the built-in vocabulary rather than merging into it.
		var probe struct {
			Sections map[string]int `yaml:"sections"`
		}
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if probe.Sections != nil {
			cfg.Sections = nil
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies TIMETABLE_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := strings.TrimSpace(os.Getenv("TIMETABLE_SUB_SECTION_PREFIX")); v != "" {
		c.SubSectionPrefix = v
	}
	if v := strings.TrimSpace(os.Getenv("TIMETABLE_MIN_HEADER_MATCHES")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid int for TIMETABLE_MIN_HEADER_MATCHES: %w", err)
		}
		c.MinHeaderMatches = n
	}
	if v := strings.TrimSpace(os.Getenv("TIMETABLE_AFTERNOON_MAX_HOUR")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid int for TIMETABLE_AFTERNOON_MAX_HOUR: %w", err)
		}
		c.AfternoonMaxHour = n
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Tables.DensityMin < 0 || c.Tables.DensityMin > 1 {
		return fmt.Errorf("invalid config: tables.density_min must be within 0..1, got %v", c.Tables.DensityMin)
	}
	if c.Tables.MaxBlankRows < 0 {
		return fmt.Errorf("invalid config: tables.max_blank_rows must not be negative")
	}
	return nil
}

// Rules converts the configuration into parser rules.
func (c *Config) Rules() parser.Rules {
	sections := make(map[string]int, len(c.Sections))
	for name, semester := range c.Sections {
		sections[strings.ToUpper(strings.TrimSpace(name))] = semester
	}
	return parser.Rules{
		Sections:           sections,
		SubSectionPrefix:   c.SubSectionPrefix,
		TimeMarker:         c.Markers.Time,
		SlotIndexMarker:    c.Markers.SlotIndex,
		MinHeaderMatches:   c.MinHeaderMatches,
		TimeProbeRows:      c.TimeProbe.Rows,
		TimeProbeColumns:   c.TimeProbe.Columns,
		FallbackTimeColumn: c.TimeProbe.FallbackColumn,
		AfternoonMaxHour:   c.AfternoonMaxHour,
	}
}

// TableParams converts the table detection settings.
func (c *Config) TableParams() grid.TableParams {
	return grid.TableParams{
		DensityMin:       c.Tables.DensityMin,
		MinNonemptyCells: c.Tables.MinNonemptyCells,
		MaxBlankRows:     c.Tables.MaxBlankRows,
	}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
