package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NATSConfig controls optional publication of run summaries.
type NATSConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// ReportConfig holds the settings for the report server.
type ReportConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Config is the top-level configuration struct for the harness tooling.
type Config struct {
	// ResultsDir is where per-run summaries land; empty disables them.
	ResultsDir string       `yaml:"results_dir"`
	NATS       NATSConfig   `yaml:"nats"`
	Report     ReportConfig `yaml:"report"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		NATS: NATSConfig{
			URL:     "nats://127.0.0.1:4222",
			Subject: "nets.results",
		},
		Report: ReportConfig{
			ListenAddr: ":8090",
		},
	}
}

// LoadConfig reads the configuration from a YAML file, applied on top of
// the defaults. An empty path returns the defaults unchanged.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	return cfg, nil
}
