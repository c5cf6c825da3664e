// Package store loads and saves the category rule files that drive
// transaction classification.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fincoach/internal/logging"
	"fincoach/internal/models"

	"gopkg.in/yaml.v3"
)

// RuleStore manages loading and saving of category rules.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for the given rules file. An empty filename
// defaults to "categories.yaml" resolved through the standard locations.
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if rulesFile == "" {
		rulesFile = "categories.yaml"
	}
	return &RuleStore{
		RulesFile: rulesFile,
		logger:    logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations:
// the path itself, ./config/, and ~/.config/fincoach/.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "fincoach", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules reads the ordered category rules from the YAML file.
func (s *RuleStore) LoadRules() ([]models.CategoryRule, error) {
	path, err := s.FindConfigFile(s.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("rules file %s not found: %w", s.RulesFile, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var cfg models.RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	s.logger.Debug("Loaded category rules",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "categories", Value: len(cfg.Categories)},
	)
	return cfg.Categories, nil
}

// SaveRules writes the rules back to the configured file, creating parent
// directories as needed.
func (s *RuleStore) SaveRules(rules []models.CategoryRule) error {
	data, err := yaml.Marshal(models.RulesConfig{Categories: rules})
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	path := s.RulesFile
	if found, err := s.FindConfigFile(s.RulesFile); err == nil {
		path = found
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && filepath.Dir(path) != "." {
		return fmt.Errorf("failed to create rules directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write rules file %s: %w", path, err)
	}
	return nil
}
