package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the top-level configuration for the motley binary.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// GameConfig tunes the ruleset handed to the engine. The defaults
// reproduce the standard game.
type GameConfig struct {
	WinScore int           `mapstructure:"win_score"`
	Terrain  []TerrainCell `mapstructure:"terrain"`
}

// TerrainCell is one fixed terrain coordinate.
type TerrainCell struct {
	Row int `mapstructure:"row"`
	Col int `mapstructure:"col"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("game.win_score", 4)
	v.SetDefault("game.terrain", []map[string]int{
		{"row": 3, "col": 0},
		{"row": 4, "col": 7},
	})
}

// Load reads configuration from the given YAML file. An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
