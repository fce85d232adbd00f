package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultSSHHost     = "::"
	DefaultSSHPort     = "2222"
	DefaultHostKeyPath = "/app/keys/host_key"
	DefaultLogLevel    = "info"
	DefaultVolume      = 0.5
	DefaultScale       = 3
	MaxScale           = 8
)

// Environment variables that override the file.
const (
	EnvConfigPath = "SHMUP_CONFIG"
	EnvSSHHost    = "SSH_HOST"
	EnvSSHPort    = "SSH_PORT"
	EnvHostKey    = "SSH_HOST_KEY"
	EnvSeed       = "SHMUP_SEED"
	EnvLogLevel   = "SHMUP_LOG_LEVEL"
)

// Config holds the runtime settings of all binaries.
// Gameplay tuning is compiled in and not configurable.
type Config struct {
	LogLevel string       `yaml:"log_level"` // debug, info, warn or error
	Seed     int64        `yaml:"seed"`      // RNG seed, 0 picks one from the clock
	SSH      SSHConfig    `yaml:"ssh"`
	Audio    AudioConfig  `yaml:"audio"`
	Window   WindowConfig `yaml:"window"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// AudioConfig configures sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// WindowConfig configures the desktop window.
type WindowConfig struct {
	Scale int `yaml:"scale"` // Window size as a multiple of the arena
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		SSH: SSHConfig{
			Host:        DefaultSSHHost,
			Port:        DefaultSSHPort,
			HostKeyPath: DefaultHostKeyPath,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  DefaultVolume,
		},
		Window: WindowConfig{
			Scale: DefaultScale,
		},
	}
}

// Load reads the YAML file at path on top of the defaults, applies
// environment overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by SHMUP_CONFIG, or defaults if unset.
func LoadFromEnv() (*Config, error) {
	return Load(GetEnv(EnvConfigPath, ""))
}

// applyEnv overrides file values with environment variables that are set.
func (c *Config) applyEnv() error {
	c.SSH.Host = GetEnv(EnvSSHHost, c.SSH.Host)
	c.SSH.Port = GetEnv(EnvSSHPort, c.SSH.Port)
	c.SSH.HostKeyPath = GetEnv(EnvHostKey, c.SSH.HostKeyPath)
	c.LogLevel = GetEnv(EnvLogLevel, c.LogLevel)

	if v := GetEnv(EnvSeed, ""); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	port, err := strconv.Atoi(c.SSH.Port)
	if err != nil {
		return fmt.Errorf("ssh.port: %w", err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("ssh.port must be between 1 and 65535, got %d", port)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1, got %v", c.Audio.Volume)
	}

	if c.Window.Scale < 1 || c.Window.Scale > MaxScale {
		return fmt.Errorf("window.scale must be between 1 and %d, got %d", MaxScale, c.Window.Scale)
	}

	return nil
}

// Level returns the parsed log level. Validate has already checked it.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
