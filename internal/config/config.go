package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game GameConfig `mapstructure:"game"`
	Demo DemoConfig `mapstructure:"demo"`
	Log  LogConfig  `mapstructure:"log"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Rules  RulesConfig  `mapstructure:"rules"`
	Mapgen MapgenConfig `mapstructure:"mapgen"`
}

// RulesConfig holds the balance constants the turn controller and combat use
type RulesConfig struct {
	FundsPerTile       int `mapstructure:"funds_per_tile"`
	CaptureRegenRate   int `mapstructure:"capture_regen_rate"`
	RepairRate         int `mapstructure:"repair_rate"`
	DefenseStepPercent int `mapstructure:"defense_step_percent"`
}

// MapgenConfig holds procedural scenario settings
type MapgenConfig struct {
	Width         int `mapstructure:"width"`
	Height        int `mapstructure:"height"`
	Players       int `mapstructure:"players"`
	StartingFunds int `mapstructure:"starting_funds"`
	CityRatio     int `mapstructure:"city_ratio"`
	ForestRatio   int `mapstructure:"forest_ratio"`
	MountainRatio int `mapstructure:"mountain_ratio"`
	WaterRatio    int `mapstructure:"water_ratio"`
}

// DemoConfig holds demo mode configuration
type DemoConfig struct {
	MaxTurns int   `mapstructure:"max_turns"`
	Seed     int64 `mapstructure:"seed"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	mu  sync.RWMutex
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Rules defaults
	v.SetDefault("game.rules.funds_per_tile", 100)
	v.SetDefault("game.rules.capture_regen_rate", 5)
	v.SetDefault("game.rules.repair_rate", 2)
	v.SetDefault("game.rules.defense_step_percent", 10)

	// Map generation defaults
	v.SetDefault("game.mapgen.width", 16)
	v.SetDefault("game.mapgen.height", 12)
	v.SetDefault("game.mapgen.players", 2)
	v.SetDefault("game.mapgen.starting_funds", 1000)
	v.SetDefault("game.mapgen.city_ratio", 12)
	v.SetDefault("game.mapgen.forest_ratio", 6)
	v.SetDefault("game.mapgen.mountain_ratio", 14)
	v.SetDefault("game.mapgen.water_ratio", 10)

	// Demo defaults
	v.SetDefault("demo.max_turns", 60)
	v.SetDefault("demo.seed", 0)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func newViper() *viper.Viper {
	nv := viper.New()
	setViperDefaults(nv)
	nv.SetEnvPrefix("HEX")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()
	return nv
}

// Load reads configuration from configPath (or the default locations when
// empty), applies HEX_ environment overrides, and validates the result. It
// does not touch the global instance.
func Load(configPath string) (*Config, error) {
	_, c, err := load(configPath)
	return c, err
}

func load(configPath string) (*viper.Viper, *Config, error) {
	nv := newViper()

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/hextactics")
	}

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configPath != "" && isMissingFile(err):
			// Specific file requested but not found - use defaults
		case configPath == "" && errors.As(err, &notFound):
			// No config in the default locations - use defaults
		default:
			return nil, nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	c := &Config{}
	if err := nv.Unmarshal(c); err != nil {
		return nil, nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, nil, fmt.Errorf("config validation failed: %w", err)
	}
	return nv, c, nil
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}

// Init initializes the global configuration
func Init(configPath string) error {
	nv, c, err := load(configPath)
	if err != nil {
		return err
	}
	mu.Lock()
	v, cfg = nv, c
	mu.Unlock()
	return nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		mu.RLock()
		c = cfg
		mu.RUnlock()
	}
	return c
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded configuration
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	if v == nil {
		return errors.New("config not initialized - call Init() first")
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil && !isMissingFile(err) {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(merged); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	cfg = merged
	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()
	if v == nil {
		return errors.New("config not initialized - call Init() first")
	}
	v.Set(key, value)
	updated := &Config{}
	if err := v.Unmarshal(updated); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg = updated
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. Reloads that fail
// validation are reported through onError and leave the previous config in place.
func WatchConfig(onChange func(*Config), onError func(error)) {
	wv := GetViper()
	wv.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		mu.Lock()
		reloaded := &Config{}
		err := wv.Unmarshal(reloaded)
		if err == nil {
			err = Validate(reloaded)
		}
		if err == nil {
			cfg = reloaded
		}
		mu.Unlock()

		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		if onChange != nil {
			onChange(reloaded)
		}
	})
	wv.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	r := c.Game.Rules
	if r.FundsPerTile < 0 {
		return fmt.Errorf("game.rules.funds_per_tile must be non-negative")
	}
	if r.CaptureRegenRate < 0 {
		return fmt.Errorf("game.rules.capture_regen_rate must be non-negative")
	}
	if r.RepairRate < 0 {
		return fmt.Errorf("game.rules.repair_rate must be non-negative")
	}
	if r.DefenseStepPercent < 0 || r.DefenseStepPercent > 100 {
		return fmt.Errorf("game.rules.defense_step_percent must be between 0 and 100")
	}

	m := c.Game.Mapgen
	if m.Width < 4 || m.Height < 4 {
		return fmt.Errorf("game.mapgen dimensions must be at least 4x4")
	}
	if m.Players < 1 || m.Players > 4 {
		return fmt.Errorf("game.mapgen.players must be between 1 and 4")
	}
	if m.StartingFunds < 0 {
		return fmt.Errorf("game.mapgen.starting_funds must be non-negative")
	}
	for name, ratio := range map[string]int{
		"city_ratio":     m.CityRatio,
		"forest_ratio":   m.ForestRatio,
		"mountain_ratio": m.MountainRatio,
		"water_ratio":    m.WaterRatio,
	} {
		if ratio < 0 {
			return fmt.Errorf("game.mapgen.%s must be non-negative", name)
		}
	}

	if c.Demo.MaxTurns <= 0 {
		return fmt.Errorf("demo.max_turns must be positive")
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
