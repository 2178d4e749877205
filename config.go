package main

import "github.com/milk9111/starseeker/config"

// loadConfig applies command line overrides on top of the config file.
func loadConfig(path string, debug bool, level string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if debug {
		cfg.Debug = true
	}
	if level != "" {
		cfg.Level = level
	}
	return cfg, nil
}
