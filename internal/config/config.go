package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		// TTL applies to persisted progress; empty keeps it forever.
		TTL string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quiz struct {
		TTL             string `yaml:"ttl"`
		DefaultCourse   string `yaml:"defaultCourse"`
		DefaultLevel    string `yaml:"defaultLevel"`
		LeaderboardSize int    `yaml:"leaderboardSize"`
	} `yaml:"quiz"`
	Log struct {
		Mode string `yaml:"mode"`
	} `yaml:"log"`
}

const (
	DefaultCourse          = "web-basics"
	DefaultLevel           = "easy"
	DefaultLeaderboardSize = 5
)

// Load reads YAML config from path and fills quiz defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Quiz.DefaultCourse == "" {
		c.Quiz.DefaultCourse = DefaultCourse
	}
	if c.Quiz.DefaultLevel == "" {
		c.Quiz.DefaultLevel = DefaultLevel
	}
	if c.Quiz.LeaderboardSize <= 0 {
		c.Quiz.LeaderboardSize = DefaultLeaderboardSize
	}
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
