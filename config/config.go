// Package config loads runtime settings from an optional starseeker.yaml and
// STARSEEKER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Debug     bool   `mapstructure:"debug"`
	FrameSkip int    `mapstructure:"frame_skip"`
	SavePath  string `mapstructure:"save_path"`
	Level     string `mapstructure:"level"`
	// FinalArea starts the game in the final area, for testing it.
	FinalArea bool `mapstructure:"final_area"`

	Randomizer RandomizerConfig `mapstructure:"randomizer"`
}

type RandomizerConfig struct {
	Address  string `mapstructure:"address"`
	Slot     string `mapstructure:"slot"`
	Password string `mapstructure:"password"`
}

// Enabled is true when a server address is configured.
func (c RandomizerConfig) Enabled() bool {
	return c.Address != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("frame_skip", 0)
	v.SetDefault("save_path", "starseeker.sav")
	v.SetDefault("level", "island")
	v.SetDefault("final_area", false)
	v.SetDefault("randomizer.address", "")
	v.SetDefault("randomizer.slot", "")
	v.SetDefault("randomizer.password", "")
}

// Load reads path if given, otherwise starseeker.yaml from the working
// directory when present. Environment variables override the file, with dots
// replaced by underscores (STARSEEKER_RANDOMIZER_ADDRESS).
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("starseeker")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("starseeker")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if cfg.FrameSkip < 0 {
		cfg.FrameSkip = 0
	}
	return cfg, nil
}
