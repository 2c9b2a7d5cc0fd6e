package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"meetlottery/internal/domain"
	"meetlottery/internal/eventbus"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MEETLOTTERY_"

// MaxThinkingSeconds caps the thinking delay
const MaxThinkingSeconds = 600

// Config represents the application configuration
type Config struct {
	Version         int            `toml:"version" yaml:"version"`
	ThinkingSeconds float64        `toml:"thinking_seconds" yaml:"thinking_seconds" env:"THINKING_SECONDS"`
	Source          SourceSettings `toml:"source" yaml:"source" envPrefix:"SOURCE_"`
	UISettings      UISettings     `toml:"ui" yaml:"ui" envPrefix:"UI_"`
}

// SourceSettings describes where participants come from
type SourceSettings struct {
	Location       string  `toml:"location" yaml:"location" env:"LOCATION"`
	Format         string  `toml:"format,omitempty" yaml:"format,omitempty" env:"FORMAT"`
	TimeoutSeconds float64 `toml:"timeout_seconds" yaml:"timeout_seconds" env:"TIMEOUT_SECONDS"`
	NameSelector   string  `toml:"name_selector,omitempty" yaml:"name_selector,omitempty" env:"NAME_SELECTOR"`
	AvatarSelector string  `toml:"avatar_selector,omitempty" yaml:"avatar_selector,omitempty" env:"AVATAR_SELECTOR"`
	AvatarAttr     string  `toml:"avatar_attr,omitempty" yaml:"avatar_attr,omitempty" env:"AVATAR_ATTR"`
	OnlineSelector string  `toml:"online_selector,omitempty" yaml:"online_selector,omitempty" env:"ONLINE_SELECTOR"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowPresence bool `toml:"show_presence" yaml:"show_presence" env:"SHOW_PRESENCE"`
	ShowAvatars  bool `toml:"show_avatars" yaml:"show_avatars" env:"SHOW_AVATARS"`
	Autosave     bool `toml:"autosave" yaml:"autosave" env:"AUTOSAVE"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Update(mutate func(*Config)) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigServiceAt creates a config service backed by path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects DefaultPath.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

// DefaultPath returns the config file location inside the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "meetlottery", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, falling back to defaults when it does
// not exist. Environment overrides are applied in both cases.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// Update applies mutate to the configuration stored in the file and saves
// it. Environment overrides are not applied, so they never reach the file.
func (cs *configService) Update(mutate func(*Config)) error {
	cfg := DefaultConfig()
	if _, err := os.Stat(cs.filePath); err == nil {
		stored, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return err
		}
		cfg = stored
	}

	mutate(cfg)
	cfg.normalize()
	return cs.Save(cfg)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with MEETLOTTERY_* environment variables
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:         1,
		ThinkingSeconds: 3,
		UISettings: UISettings{
			ShowPresence: true,
			Autosave:     true,
		},
	}
}

func (c *Config) normalize() {
	c.ThinkingSeconds = ClampThinkingSeconds(c.ThinkingSeconds)
	if c.Source.TimeoutSeconds < 0 || math.IsNaN(c.Source.TimeoutSeconds) {
		c.Source.TimeoutSeconds = 0
	}
}

// ClampThinkingSeconds maps NaN, infinite and negative values to 0 and
// caps the delay at MaxThinkingSeconds
func ClampThinkingSeconds(seconds float64) float64 {
	switch {
	case math.IsNaN(seconds), math.IsInf(seconds, 0), seconds < 0:
		return 0
	case seconds > MaxThinkingSeconds:
		return MaxThinkingSeconds
	default:
		return seconds
	}
}

// CoerceThinkingSeconds turns user input into a thinking delay in seconds.
// Input that is not a number yields 0.
func CoerceThinkingSeconds(raw string) float64 {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return ClampThinkingSeconds(seconds)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
