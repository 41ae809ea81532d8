package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Store     StoreConfig     `yaml:"store" envconfig:"STORE"`
	Export    ExportConfig    `yaml:"export" envconfig:"EXPORT"`
	Pipeline  PipelineConfig  `yaml:"pipeline" envconfig:"PIPELINE"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// StoreConfig controls how the feature table is persisted
type StoreConfig struct {
	TableName string `yaml:"table_name" envconfig:"TABLE_NAME"`
	BatchSize int    `yaml:"batch_size" envconfig:"BATCH_SIZE"`
}

// ExportConfig holds optional side exports of the feature table.
// Empty paths disable the export.
type ExportConfig struct {
	CSVPath  string `yaml:"csv_path" envconfig:"CSV_PATH"`
	XLSXPath string `yaml:"xlsx_path" envconfig:"XLSX_PATH"`
}

// PipelineConfig holds the constants the transform depends on
type PipelineConfig struct {
	AgeSentinel      int    `yaml:"age_sentinel" envconfig:"AGE_SENTINEL"`
	MemberDateLayout string `yaml:"member_date_layout" envconfig:"MEMBER_DATE_LAYOUT"`
	UnknownGender    string `yaml:"unknown_gender" envconfig:"UNKNOWN_GENDER"`
	FailLabel        string `yaml:"fail_label" envconfig:"FAIL_LABEL"`
}

// TelemetryConfig controls tracing and the batch metrics textfile
type TelemetryConfig struct {
	TracingEnabled  bool   `yaml:"tracing_enabled" envconfig:"TRACING_ENABLED"`
	TraceExporter   string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER"`
	MetricsTextfile string `yaml:"metrics_textfile" envconfig:"METRICS_TEXTFILE"`
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load loads configuration from defaults, an optional YAML file and the
// environment. An empty configFile falls back to the usual locations.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Only variables that are actually set override the file values
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML file values onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates and normalizes the configuration
func (c *Config) validate() error {
	if !tableNamePattern.MatchString(c.Store.TableName) {
		return fmt.Errorf("invalid store table name: %q", c.Store.TableName)
	}

	if c.Store.BatchSize <= 0 {
		return fmt.Errorf("store batch size must be positive, got %d", c.Store.BatchSize)
	}

	if c.Pipeline.MemberDateLayout == "" {
		return fmt.Errorf("pipeline member date layout must be set")
	}

	if c.Pipeline.UnknownGender == "" {
		return fmt.Errorf("pipeline unknown gender label must be set")
	}

	if c.Pipeline.FailLabel == "" {
		return fmt.Errorf("pipeline fail label must be set")
	}

	c.Logging.Output = strings.ToLower(c.Logging.Output)
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %q", c.Logging.Output)
	}

	// JSON is the only supported log format
	c.Logging.Format = "json"

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFile
	}

	switch c.Telemetry.TraceExporter {
	case "stdout", "none":
	default:
		return fmt.Errorf("unsupported trace exporter: %q", c.Telemetry.TraceExporter)
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return path
	}

	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Store: StoreConfig{
			TableName: DefaultTableName,
			BatchSize: DefaultBatchSize,
		},
		Pipeline: PipelineConfig{
			AgeSentinel:      DefaultAgeSentinel,
			MemberDateLayout: DefaultMemberDateLayout,
			UnknownGender:    DefaultUnknownGender,
			FailLabel:        DefaultFailLabel,
		},
		Telemetry: TelemetryConfig{
			TracingEnabled: false,
			TraceExporter:  "none",
		},
	}
}
