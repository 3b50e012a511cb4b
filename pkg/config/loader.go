package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the single YAML document the service reads.
const configFile = "aushadhi.yaml"

// Initialize loads, defaults, and validates configuration from
// configDir. A missing file is not an error; the defaults stand alone.
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)

	cfg := &Config{configDir: configDir}
	path := filepath.Join(configDir, configFile)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info("no configuration file found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(ExpandEnv(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("configuration initialized",
		"port", cfg.Server.Port,
		"confirmation_ttl", cfg.Pipeline.ConfirmationTTL.Std(0),
		"controlled_substances", len(cfg.Clinical.ControlledSubstances))
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", cfg.Server.Port)
	}
	if cfg.Pipeline.ConfirmationTTL.Std(0) <= 0 {
		return errors.New("pipeline.confirmation_ttl must be positive")
	}
	for ingredient, capMg := range cfg.Clinical.MaxDailyDoseMg {
		if capMg <= 0 {
			return fmt.Errorf("clinical.max_daily_dose_mg[%s] must be positive", ingredient)
		}
	}
	if cfg.Clinical.PrescriptionValidityDays < 1 {
		return errors.New("clinical.prescription_validity_days must be positive")
	}
	return nil
}
