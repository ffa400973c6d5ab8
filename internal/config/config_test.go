package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/uniomni/survey/internal/errors"
	"github.com/uniomni/survey/internal/skillgap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rankskills.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.True(t, cfg.Report.Unsustainability)
	assert.Equal(t, AppName, cfg.Telemetry.ServiceName)
	assert.False(t, cfg.Telemetry.Trace)
	assert.Equal(t, skillgap.DefaultPolicy(), cfg.Policy)
	assert.NoError(t, cfg.Validate())
}

// TestLoad tests the Load function with various scenarios
func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		env         map[string]string
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults without file or env",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "file overrides defaults",
			file: `
logging:
  level: debug
  format: text
report:
  format: table
  unsustainability: false
  csv_path: out/skills.csv
policy:
  sustain:
    dont_know: -1
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, "console", cfg.Logging.Output)
				assert.Equal(t, "table", cfg.Report.Format)
				assert.False(t, cfg.Report.Unsustainability)
				assert.Equal(t, "out/skills.csv", cfg.Report.CSVPath)
				assert.Equal(t, -1.0, cfg.Policy.Sustain.DontKnow)
				assert.Equal(t, 0.0, cfg.Policy.Sustain.Missing)
				assert.Equal(t, skillgap.DefaultPolicy().Scale, cfg.Policy.Scale)
			},
		},
		{
			name: "env overrides file",
			file: `
logging:
  level: debug
policy:
  sustain:
    dont_know: -1
`,
			env: map[string]string{
				"SKILLS_LOGGING_LEVEL":            "error",
				"SKILLS_POLICY_SUSTAIN_DONT_KNOW": "-2",
				"SKILLS_POLICY_NEED_MISSING":      "1",
				"SKILLS_TELEMETRY_TRACE":          "true",
				"SKILLS_POLICY_MISSING_MARKERS":   "N/A,nan",
				"SKILLS_REPORT_CSV_BOM":           "true",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "error", cfg.Logging.Level)
				assert.Equal(t, -2.0, cfg.Policy.Sustain.DontKnow)
				assert.Equal(t, 1.0, cfg.Policy.Need.Missing)
				assert.True(t, cfg.Telemetry.Trace)
				assert.Equal(t, []string{"N/A", "nan"}, cfg.Policy.MissingMarkers)
				assert.True(t, cfg.Report.CSVBOM)
			},
		},
		{
			name: "configured scale replaces the default scale",
			file: `
policy:
  scale:
    "No": 0
    "Yes": 1
  dont_know_label: Unsure
  need:
    dont_know: 0
  access:
    dont_know: 0
  sustain:
    dont_know: 0
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, map[string]float64{"No": 0, "Yes": 1}, cfg.Policy.Scale)
				assert.Equal(t, "Unsure", cfg.Policy.DontKnowLabel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}

			cfg, err := Load(path)
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{
			name: "bad log level",
			file: "logging:\n  level: verbose\n",
		},
		{
			name: "bad report format",
			env:  map[string]string{"SKILLS_REPORT_FORMAT": "html"},
		},
		{
			name: "file output without path",
			file: "logging:\n  output: file\n  file_path: \"\"\n",
		},
		{
			name: "substitute off the scale",
			file: "policy:\n  access:\n    missing: 7\n",
		},
		{
			name: "unparsable env value",
			env:  map[string]string{"SKILLS_POLICY_NEED_DONT_KNOW": "lots"},
		},
		{
			name: "malformed yaml",
			file: "logging: [level\n",
		},
		{
			name: "blank service name",
			env:  map[string]string{"SKILLS_TELEMETRY_SERVICE_NAME": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig), "got %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.Equal(t, "", findConfigFile())

	require.NoError(t, os.MkdirAll("configs", 0755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "rankskills.yaml"), []byte("report:\n  format: table\n"), 0644))
	assert.Equal(t, "configs/rankskills.yaml", findConfigFile())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Report.Format)
}
