package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/timetable-go/pkg/timetable/grid"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

func clearEnv(t *testing.T) {
	t.Setenv("TIMETABLE_SUB_SECTION_PREFIX", "")
	t.Setenv("TIMETABLE_MIN_HEADER_MATCHES", "")
	t.Setenv("TIMETABLE_AFTERNOON_MAX_HOUR", "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timetable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, parser.DefaultRules(), cfg.Rules())
	assert.Equal(t, grid.DefaultTableParams(), cfg.TableParams())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
sections:
  ce31: 3
  CE32: 3
sub_section_prefix: CE
afternoon_max_hour: 6
tables:
  max_blank_rows: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	rules := cfg.Rules()
	assert.Equal(t, map[string]int{"CE31": 3, "CE32": 3}, rules.Sections)
	assert.Equal(t, "CE", rules.SubSectionPrefix)
	assert.Equal(t, 6, rules.AfternoonMaxHour)
	assert.Equal(t, "TIME", rules.TimeMarker)
	assert.Equal(t, 2, rules.MinHeaderMatches)
	assert.Equal(t, 4, cfg.TableParams().MaxBlankRows)
	assert.Equal(t, 0.04, cfg.TableParams().DensityMin)
}

func TestLoadWithoutSectionsKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "min_header_matches: 3\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, parser.DefaultSections(), cfg.Sections)
	assert.Equal(t, 3, cfg.MinHeaderMatches)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TIMETABLE_SUB_SECTION_PREFIX", "CS")
	t.Setenv("TIMETABLE_MIN_HEADER_MATCHES", "1")
	t.Setenv("TIMETABLE_AFTERNOON_MAX_HOUR", "5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "CS", cfg.SubSectionPrefix)
	assert.Equal(t, 1, cfg.MinHeaderMatches)
	assert.Equal(t, 5, cfg.AfternoonMaxHour)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		want    string
	}{
		{name: "malformed yaml", content: "sections: [", want: "failed to parse config"},
		{name: "empty vocabulary", content: "sections: {}\n", want: "invalid config"},
		{name: "afternoon hour out of range", content: "afternoon_max_hour: 12\n", want: "afternoon max hour"},
		{name: "density out of range", content: "tables:\n  density_min: 1.5\n", want: "density_min"},
		{name: "negative blank rows", content: "tables:\n  max_blank_rows: -1\n", want: "max_blank_rows"},
		{
			name:    "non-numeric env",
			content: "sub_section_prefix: IT\n",
			env:     map[string]string{"TIMETABLE_MIN_HEADER_MATCHES": "two"},
			want:    "TIMETABLE_MIN_HEADER_MATCHES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AfternoonMaxHour = 6

	data, err := cfg.Marshal()
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
}
