/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rickenator/dna-codec/pkg/codec"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the dnac configuration
type Config struct {
	// Markers are the frame constants. Encoder and decoder must agree on
	// them; leaving the section out selects the protocol defaults.
	Markers     codec.MarkerSet `yaml:"markers"`
	TrimPadding bool            `yaml:"trim_padding"`
	Vault       Vault           `yaml:"vault"`
	Server      Server          `yaml:"server"`
	Logging     Logging         `yaml:"logging"`
}

// Vault contains sequence archive configuration
type Vault struct {
	Path          string `yaml:"path"`
	EntryEncoding string `yaml:"entry_encoding"`
}

// Server contains HTTP service configuration
type Server struct {
	Port   int    `yaml:"port"`
	Bind   string `yaml:"bind"`
	APIKey string `yaml:"api_key"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Entry encodings the vault can store with.
const (
	EncodingJSON = "json"
	EncodingCBOR = "cbor"
)

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Markers: codec.DefaultMarkerSet(),
		Vault: Vault{
			Path:          "./vault",
			EntryEncoding: EncodingJSON,
		},
		Server: Server{
			Port: 8077,
			Bind: "127.0.0.1",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate checks the configuration for values that cannot work. Zero
// values mean "use the default" and pass.
func (c *Config) Validate() error {
	if c.Markers != (codec.MarkerSet{}) {
		if err := c.Markers.Validate(); err != nil {
			return fmt.Errorf("invalid marker set: %w", err)
		}
	}
	switch c.Vault.EntryEncoding {
	case "", EncodingJSON, EncodingCBOR:
	default:
		return fmt.Errorf("invalid vault entry encoding %q: must be %q or %q",
			c.Vault.EntryEncoding, EncodingJSON, EncodingCBOR)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Logging.Level != "" {
		if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
		}
	}
	return nil
}

// CodecConfig maps the configuration onto codec construction options.
func (c *Config) CodecConfig() codec.Config {
	return codec.Config{
		Markers:     c.Markers,
		TrimPadding: c.TrimPadding,
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The server API key lives in this file, so keep it private (0600)
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateAPIKey generates a cryptographically secure random API key
func GenerateAPIKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate API key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated server API
// key and saves it to the specified path
func BootstrapConfig(configPath string, vaultPath string) (*Config, error) {
	config := DefaultConfig()
	if vaultPath != "" {
		config.Vault.Path = vaultPath
	}

	apiKey, err := GenerateAPIKey(32) // 256 bits
	if err != nil {
		return nil, err
	}
	config.Server.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./dnac.yaml"
	}

	// For Linux/macOS, use ~/.config/dnac/config.yaml
	configDir := filepath.Join(homeDir, ".config", "dnac")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
