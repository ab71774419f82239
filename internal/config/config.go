package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Search    SearchConfig    `yaml:"search"`
	Recommend RecommendConfig `yaml:"recommend"`
	Trending  TrendingConfig  `yaml:"trending"`
	Import    ImportConfig    `yaml:"import"`
}

type SearchConfig struct {
	K1            float64 `yaml:"k1"`
	B             float64 `yaml:"b"`
	TitleBoost    float64 `yaml:"title_boost"`
	SubtitleBoost float64 `yaml:"subtitle_boost"`
	TagBoost      float64 `yaml:"tag_boost"`
	Limit         int     `yaml:"limit"`
}

type RecommendConfig struct {
	Limit int `yaml:"limit"`
}

type TrendingConfig struct {
	MinLikes            int     `yaml:"min_likes"`
	MinComments         int     `yaml:"min_comments"`
	MaxAgeDays          int     `yaml:"max_age_days"`
	DecayDays           float64 `yaml:"decay_days"`
	Gravity             float64 `yaml:"gravity"`
	UseLogarithmicDecay bool    `yaml:"use_logarithmic_decay"`
	Limit               int     `yaml:"limit"`
}

type ImportConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

func Default() *Config {
	return &Config{
		Search: SearchConfig{
			K1:            1.5,
			B:             0.75,
			TitleBoost:    2.0,
			SubtitleBoost: 1.5,
			TagBoost:      1.3,
			Limit:         20,
		},
		Recommend: RecommendConfig{
			Limit: 10,
		},
		Trending: TrendingConfig{
			MinLikes:    1,
			MinComments: 0,
			MaxAgeDays:  90,
			DecayDays:   7,
			Gravity:     1.8,
			Limit:       10,
		},
		Import: ImportConfig{
			TimeoutSeconds: 30,
			UserAgent:      "curator/1.0",
		},
	}
}

func Dir() string {
	if dir := os.Getenv("CURATOR_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".curator")
}

func DBPath() string {
	return filepath.Join(Dir(), "curator.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
