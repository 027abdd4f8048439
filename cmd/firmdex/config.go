package main

import (
	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration file for the CLI. Flags take
// precedence over file values.
type Config struct {
	Dataset         string `toml:"dataset"`
	HistoryDB       string `toml:"history_db"`
	HistoryCapacity int    `toml:"history_capacity"`
	CacheSize       int    `toml:"cache_size"`
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
