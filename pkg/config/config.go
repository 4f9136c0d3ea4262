// Package config loads and validates kinda's YAML configuration, adapted
// from the teacher's pkg/config.Config: same DefaultConfig/Load/Save/Validate
// shape and the same $ENV-expansion-before-parse trick, re-keyed for the
// transformer's own concerns instead of a chaos-test harness's.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the kinda-lang transformer configuration.
type Config struct {
	Framework   FrameworkConfig   `yaml:"framework"`
	Personality PersonalityConfig `yaml:"personality"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Reporting   ReportingConfig   `yaml:"reporting"`
	Interrupt   InterruptConfig   `yaml:"interrupt"`
	Execution   ExecutionConfig   `yaml:"execution"`
	Safety      SafetyConfig      `yaml:"safety"`
	Composition CompositionConfig `yaml:"composition"`
}

// FrameworkConfig contains general framework settings.
type FrameworkConfig struct {
	Version   string `yaml:"version"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// PersonalityConfig contains the default chaos-profile settings applied
// when a source file has no `~kinda mood` directive.
type PersonalityConfig struct {
	DefaultMood string `yaml:"default_mood"`
	DefaultSeed int64  `yaml:"default_seed"`
}

// TelemetryConfig contains Prometheus *exposition* settings: the address
// kinda's own run metrics are served from, not an endpoint to query (see
// pkg/telemetry and DESIGN.md's note on the Prometheus dependency pivot).
type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Path    string `yaml:"path"`
}

// ReportingConfig contains reporting and output settings.
type ReportingConfig struct {
	OutputDir string   `yaml:"output_dir"`
	KeepLastN int      `yaml:"keep_last_n"`
	Formats   []string `yaml:"formats"`
}

// InterruptConfig contains cooperative-cancellation settings.
type InterruptConfig struct {
	StopFile     string        `yaml:"stop_file"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// ExecutionConfig contains batch-transform execution settings.
type ExecutionConfig struct {
	DefaultMode     string `yaml:"default_mode"`
	MaxConcurrentIO int    `yaml:"max_concurrent_io"`
	ContinueOnError bool   `yaml:"continue_on_error"`
}

// SafetyConfig contains safety limits for runaway constructs.
type SafetyConfig struct {
	MaxEventuallyIterations int  `yaml:"max_eventually_iterations"`
	RequireConfirmation     bool `yaml:"require_confirmation"`
}

// CompositionConfig toggles C7's composition framework (spec §4.7/§9): the
// lazy, cached resolution that composite constructs (sorta, ish) build on
// top of the personality-gated primitives, on both the emitted runtime and
// pkg/composition's Go-native mirror.
type CompositionConfig struct {
	UseCompositionIsh bool `yaml:"use_composition_ish"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Framework: FrameworkConfig{
			Version:   "v1",
			LogLevel:  "info",
			LogFormat: "text",
		},
		Personality: PersonalityConfig{
			DefaultMood: "playful",
			DefaultSeed: 0,
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
			Addr:    ":9191",
			Path:    "/metrics",
		},
		Reporting: ReportingConfig{
			OutputDir: "./reports",
			KeepLastN: 50,
			Formats:   []string{"json", "text"},
		},
		Interrupt: InterruptConfig{
			StopFile:     "/tmp/kinda-lang-stop",
			PollInterval: 1 * time.Second,
		},
		Execution: ExecutionConfig{
			DefaultMode:     "sequential",
			MaxConcurrentIO: 4,
			ContinueOnError: true,
		},
		Safety: SafetyConfig{
			MaxEventuallyIterations: 1000,
			RequireConfirmation:     false,
		},
		Composition: CompositionConfig{
			UseCompositionIsh: true,
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults if
// the file doesn't exist. An empty path means "kinda.yaml".
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = "kinda.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expandedData := []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(expandedData, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Personality.DefaultMood == "" {
		return fmt.Errorf("personality.default_mood is required")
	}

	if c.Reporting.OutputDir == "" {
		return fmt.Errorf("reporting.output_dir is required")
	}

	if c.Execution.MaxConcurrentIO < 1 {
		return fmt.Errorf("execution.max_concurrent_io must be at least 1")
	}

	if c.Safety.MaxEventuallyIterations < 1 {
		return fmt.Errorf("safety.max_eventually_iterations must be at least 1")
	}

	return nil
}
