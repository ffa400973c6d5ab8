package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "github.com/uniomni/survey/internal/errors"
	"github.com/uniomni/survey/internal/skillgap"
)

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Policy    skillgap.Policy `yaml:"policy" envconfig:"POLICY"`
	Report    ReportConfig    `yaml:"report" envconfig:"REPORT"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// ReportConfig controls the printed report and the optional exports
type ReportConfig struct {
	Format           string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text table"`
	Unsustainability bool   `yaml:"unsustainability" envconfig:"UNSUSTAINABILITY"`
	CSVPath          string `yaml:"csv_path" envconfig:"CSV_PATH"`
	CSVBOM           bool   `yaml:"csv_bom" envconfig:"CSV_BOM"`
	XLSXPath         string `yaml:"xlsx_path" envconfig:"XLSX_PATH"`
}

// TelemetryConfig controls span output and the metrics textfile
type TelemetryConfig struct {
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
	Trace       bool   `yaml:"trace" envconfig:"TRACE"`
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Default returns default configuration. It reproduces the plain report:
// text listings on stdout and warnings only on stderr.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Policy: skillgap.DefaultPolicy(),
		Report: ReportConfig{
			Format:           "text",
			Unsustainability: true,
		},
		Telemetry: TelemetryConfig{
			ServiceName: AppName,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and
// SKILLS_* environment variables, in increasing order of precedence. An
// empty path falls back to the first default config file that exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to load config from %s", path), err).
				WithContext("path", path)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	// yaml merges into the default scale map; a configured scale replaces it
	var probe struct {
		Policy struct {
			Scale map[string]float64 `yaml:"scale"`
		} `yaml:"policy"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Policy.Scale != nil {
		cfg.Policy.Scale = probe.Policy.Scale
	}
	return nil
}

// Validate checks the struct constraints and the scoring policy
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s=%v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
		}
		return apperrors.NewConfigError(fmt.Sprintf("invalid configuration: %s", strings.Join(fields, ", ")), err)
	}

	if err := skillgap.ValidatePolicy(c.Policy); err != nil {
		return apperrors.NewConfigError("invalid scoring policy", err)
	}
	return nil
}

// findConfigFile returns the first default config file present in the
// working directory, or "" if there is none
func findConfigFile() string {
	for _, location := range DefaultConfigFiles {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}
