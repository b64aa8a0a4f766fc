package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// NormalizerConfig holds the prefix/suffix descriptor lists stripped from
// entity names. Empty lists fall back to the built-in restaurant defaults.
type NormalizerConfig struct {
	Prefixes []string `yaml:"prefixes,omitempty"`
	Suffixes []string `yaml:"suffixes,omitempty"`
}

// ScorerConfig configures the name similarity scorer.
type ScorerConfig struct {
	DropTokenLen   int   `yaml:"drop_token_len" validate:"gte=0"`
	FuzzyWordMatch *bool `yaml:"fuzzy_word_match,omitempty"`
	LengthPenalty  *bool `yaml:"length_penalty,omitempty"`
}

// ResolverConfig holds the similarity thresholds per resolution context:
// a high bar for spreadsheet-consistent candidates, a lower one for
// freer-form label-derived names.
type ResolverConfig struct {
	RegistryThreshold float64 `yaml:"registry_threshold" validate:"gte=0,lte=1"`
	LabelThreshold    float64 `yaml:"label_threshold" validate:"gte=0,lte=1"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Scorer     ScorerConfig     `yaml:"scorer"`
	Resolver   ResolverConfig   `yaml:"resolver"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/tastemap/config.yaml.
// If neither exists, it writes defaults to ~/.config/tastemap/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tastemap", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	on := true
	return &AppConfig{
		Scorer: ScorerConfig{DropTokenLen: 2, FuzzyWordMatch: &on, LengthPenalty: &on},
		Resolver: ResolverConfig{
			RegistryThreshold: 0.85,
			LabelThreshold:    0.75,
		},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	on := true
	if cfg.Scorer.DropTokenLen == 0 {
		cfg.Scorer.DropTokenLen = 2
	}
	if cfg.Scorer.FuzzyWordMatch == nil {
		cfg.Scorer.FuzzyWordMatch = &on
	}
	if cfg.Scorer.LengthPenalty == nil {
		cfg.Scorer.LengthPenalty = &on
	}
	if cfg.Resolver.RegistryThreshold == 0 {
		cfg.Resolver.RegistryThreshold = 0.85
	}
	if cfg.Resolver.LabelThreshold == 0 {
		cfg.Resolver.LabelThreshold = 0.75
	}
}

func validate(cfg *AppConfig) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
