// Package config handles loading, defaulting, and hot-reloading of the
// gloss configuration file.
package config

// Config is the full gloss configuration.
type Config struct {
	SEC     SECConfig     `mapstructure:"sec" yaml:"sec"`
	Extract ExtractConfig `mapstructure:"extract" yaml:"extract"`
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
}

// SECConfig controls EDGAR requests.
type SECConfig struct {
	// UserAgent identifies the requester to the SEC, which expects a
	// name and contact address on every API call.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// ExtractConfig carries defaults for the extract command.
type ExtractConfig struct {
	Layout        string   `mapstructure:"layout" yaml:"layout"`
	Backend       string   `mapstructure:"backend" yaml:"backend"`
	SkipFirstPage bool     `mapstructure:"skip_first_page" yaml:"skip_first_page"`
	SplitColumns  bool     `mapstructure:"split_columns" yaml:"split_columns"`
	CleanPatterns []string `mapstructure:"clean_patterns" yaml:"clean_patterns"`
}

// DatasetConfig carries defaults for dataset generation.
type DatasetConfig struct {
	SampleSize int    `mapstructure:"sample_size" yaml:"sample_size"`
	Seed       int64  `mapstructure:"seed" yaml:"seed"`
	Output     string `mapstructure:"output" yaml:"output"`
}

// ServerConfig configures the glossary HTTP server.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		SEC: SECConfig{
			UserAgent: "gloss/1.0 (set sec.user_agent to your name and contact email)",
		},
		Extract: ExtractConfig{
			Layout:  "colon",
			Backend: "auto",
		},
		Dataset: DatasetConfig{
			Seed:   42,
			Output: "finance_training_data.json",
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
	}
}
