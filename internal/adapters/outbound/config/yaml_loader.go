package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nutricalc/nutricalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the config directory.
const FileName = ".nutricalc.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .nutricalc.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .nutricalc.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.CalculatorConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.CalculatorConfig{}, err
	}

	var cfg domain.CalculatorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.CalculatorConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate before merging so typos in the user's catalog surface.
	if err := cfg.Validate(); err != nil {
		return domain.CalculatorConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg.WithDefaults(), nil
}

// Marshal renders cfg as a commented .nutricalc.yaml document.
func Marshal(cfg domain.CalculatorConfig) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	header := "# nutricalc configuration\n" +
		"# meals: menu catalog (calories must be > 0)\n" +
		"# exercises: category -> activities with MET values; ids must be unique\n\n"
	return append([]byte(header), body...), nil
}
