// Package config provides configuration management for agentctx.
// It supports a YAML configuration file, environment variables, and
// sensible defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"agentctx/internal/util"
)

// Config represents the complete agentctx configuration.
type Config struct {
	// Scan configures the scan roots and recognized extensions
	Scan ScanConfig `yaml:"scan"`

	// Server configures the protocol server host
	Server ServerConfig `yaml:"server"`

	// Output configures display preferences
	Output OutputConfig `yaml:"output"`
}

// ScanConfig holds the roots and extension sets the scanners use.
type ScanConfig struct {
	// ProjectRoot is the workspace root; defaults to the working directory
	ProjectRoot string `yaml:"project_root,omitempty"`
	// UserRoot is the global root; defaults to the home directory
	UserRoot string `yaml:"user_root,omitempty"`
	// RuleExtensions overrides the recognized rule file extensions
	RuleExtensions []string `yaml:"rule_extensions,omitempty"`
}

// ServerConfig holds protocol server settings.
type ServerConfig struct {
	// Name is the advertised server name
	Name string `yaml:"name"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Format is the default output format (table, json)
	Format string `yaml:"format"`
	// Color controls color output (auto, always, never)
	Color string `yaml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			ProjectRoot:    workingDir(),
			UserRoot:       util.HomeDir(),
			RuleExtensions: []string{".mdc", ".md"},
		},
		Server: ServerConfig{
			Name: "agentctx",
		},
		Output: OutputConfig{
			Format: "table",
			Color:  "auto",
		},
	}
}

// configFileName is the name of the config file.
const configFileName = "config.yaml"

// FilePath returns the path to the config file.
func FilePath() string {
	return filepath.Join(configDir(), configFileName)
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "agentctx")
	}
	return filepath.Join(util.HomeDir(), ".config", "agentctx")
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Load loads the configuration from file, merging with defaults.
// If the config file doesn't exist, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	configPath := FilePath()
	// #nosec G304 - configPath is constructed from trusted config directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvironment()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	configPath := FilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// #nosec G306 - config file should be readable by user
	return os.WriteFile(configPath, data, 0o644)
}

// applyEnvironment applies environment variable overrides.
// Environment variables follow the pattern AGENTCTX_<SECTION>_<KEY>.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("AGENTCTX_SCAN_PROJECT_ROOT"); v != "" {
		c.Scan.ProjectRoot = v
	}
	if v := os.Getenv("AGENTCTX_SCAN_USER_ROOT"); v != "" {
		c.Scan.UserRoot = v
	}
	if v := os.Getenv("AGENTCTX_SERVER_NAME"); v != "" {
		c.Server.Name = v
	}
	if v := os.Getenv("AGENTCTX_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("AGENTCTX_OUTPUT_COLOR"); v != "" {
		c.Output.Color = v
	}
	if v := os.Getenv("AGENTCTX_OUTPUT_NO_COLOR"); v != "" {
		if noColor, err := strconv.ParseBool(v); err == nil && noColor {
			c.Output.Color = "never"
		}
	}
}
