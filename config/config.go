// Package config loads the optional ghdump configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// DefaultPrefix is the base output filename prefix used inside the
	// timestamped directory when -o is not given.
	DefaultPrefix string `yaml:"default_prefix,omitempty"`

	// MaxDiffLines overrides the per-file diff embedding limit.
	MaxDiffLines *int `yaml:"max_diff_lines,omitempty"`

	// OutputDir places the timestamped output directory under this path
	// instead of the current directory.
	OutputDir string `yaml:"output_dir,omitempty"`
}

// DefaultPrefixValue is the fallback output filename prefix.
const DefaultPrefixValue = "item"

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".ghdump"
	}
	return filepath.Join(configDir, "ghdump")
}

// ConfigPath returns the path to the global config file.
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory.
func LocalConfigPath() string {
	return ".ghdump.yaml"
}

// Load loads the configuration from disk. It first loads the global
// config from the XDG config directory, then merges any local
// .ghdump.yaml on top (local values take precedence).
func Load() (*Config, error) {
	cfg := &Config{}

	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}
		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}
		cfg = mergeConfig(cfg, &localCfg)
	}

	return cfg, nil
}

// mergeConfig merges local config on top of global config. Local values
// take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := &Config{
		DefaultPrefix: global.DefaultPrefix,
		MaxDiffLines:  global.MaxDiffLines,
		OutputDir:     global.OutputDir,
	}
	if local.DefaultPrefix != "" {
		result.DefaultPrefix = local.DefaultPrefix
	}
	if local.MaxDiffLines != nil {
		result.MaxDiffLines = local.MaxDiffLines
	}
	if local.OutputDir != "" {
		result.OutputDir = local.OutputDir
	}
	return result
}

// GetPrefix returns the configured filename prefix, or the default.
func (c *Config) GetPrefix() string {
	if c.DefaultPrefix != "" {
		return c.DefaultPrefix
	}
	return DefaultPrefixValue
}

// GetMaxDiffLines returns the configured diff limit, or 0 when unset so
// the formatter's default applies.
func (c *Config) GetMaxDiffLines() int {
	if c.MaxDiffLines != nil {
		return *c.MaxDiffLines
	}
	return 0
}

// GetGitHubToken returns the GitHub token from the GITHUB_TOKEN
// environment variable. Tokens are only read from the environment, never
// from config files.
func (c *Config) GetGitHubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

// DefaultConfig returns a config populated with all default values.
func DefaultConfig() *Config {
	limit := 500
	return &Config{
		DefaultPrefix: DefaultPrefixValue,
		MaxDiffLines:  &limit,
	}
}

// SetDefaultPrefix persists the default filename prefix to the global
// config file.
func (c *Config) SetDefaultPrefix(prefix string) error {
	c.DefaultPrefix = prefix
	yamlStr, err := c.ToYAML()
	if err != nil {
		return err
	}
	return SaveTo(ConfigPath(), yamlStr)
}

// ToYAML returns the config as a YAML string.
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths.
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs.
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments.
func MinimalConfig() string {
	return `# ghdump configuration file

# Base output filename prefix inside the timestamped directory
default_prefix: item

# Skip per-file diffs larger than this many combined changed lines
# max_diff_lines: 500

# Place timestamped output directories under this path (optional)
# output_dir: ~/ghdump-output
`
}

// SaveTo writes content to a specific path, creating directories as needed.
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
