package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for panectl
type Config struct {
	Tmux  TmuxConfig  `yaml:"tmux"`
	Demo  DemoConfig  `yaml:"demo"`
	Watch WatchConfig `yaml:"watch"`
}

// TmuxConfig controls how the tmux binary is invoked
type TmuxConfig struct {
	Command      string        `yaml:"command"`       // tmux binary name or path
	DefaultWait  time.Duration `yaml:"default_wait"`  // Wait after sending a command before capturing
	CaptureLines int           `yaml:"capture_lines"` // History lines captured by default
}

// DemoConfig controls the demonstration routines
type DemoConfig struct {
	CommandInterval time.Duration `yaml:"command_interval"` // Pause between interactive-demo commands
	CaptureTail     int           `yaml:"capture_tail"`     // Pane lines shown at the end of the basic demo
}

// WatchConfig controls the live pane viewer
type WatchConfig struct {
	Interval time.Duration `yaml:"interval"` // How often to re-capture the pane
	Lines    int           `yaml:"lines"`    // Pane lines kept on screen
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Tmux: TmuxConfig{
			Command:      "tmux",
			DefaultWait:  300 * time.Millisecond,
			CaptureLines: 500,
		},
		Demo: DemoConfig{
			CommandInterval: 200 * time.Millisecond,
			CaptureTail:     10,
		},
		Watch: WatchConfig{
			Interval: 1 * time.Second,
			Lines:    50,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with default config, then overlay file values
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Tmux.Command == "" {
		return fmt.Errorf("tmux.command cannot be empty")
	}
	if c.Tmux.DefaultWait < 0 {
		return fmt.Errorf("tmux.default_wait cannot be negative, got %v", c.Tmux.DefaultWait)
	}
	if c.Tmux.CaptureLines < 1 {
		return fmt.Errorf("tmux.capture_lines must be >= 1, got %d", c.Tmux.CaptureLines)
	}

	if c.Demo.CommandInterval < 0 {
		return fmt.Errorf("demo.command_interval cannot be negative, got %v", c.Demo.CommandInterval)
	}
	if c.Demo.CaptureTail < 1 {
		return fmt.Errorf("demo.capture_tail must be >= 1, got %d", c.Demo.CaptureTail)
	}

	if c.Watch.Interval < 100*time.Millisecond {
		return fmt.Errorf("watch.interval must be >= 100ms, got %v", c.Watch.Interval)
	}
	if c.Watch.Lines < 1 {
		return fmt.Errorf("watch.lines must be >= 1, got %d", c.Watch.Lines)
	}

	return nil
}

// LoadOrDefault attempts to load config from path, falling back to defaults on error
// This is the recommended way to load config in production code
func LoadOrDefault(path string) *Config {
	if path == "" {
		return DefaultConfig()
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		// Log warning but continue with defaults
		fmt.Fprintf(os.Stderr, "Warning: failed to load config from %s: %v\n", path, err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		return DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid config in %s: %v\n", path, err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		return DefaultConfig()
	}

	return cfg
}
