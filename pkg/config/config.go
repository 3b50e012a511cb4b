// Package config loads aushadhi.yaml: server settings, pipeline tuning,
// and the clinical catalogs the agents consult.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize and
// threaded through the application wiring.
type Config struct {
	configDir string

	Server   *ServerConfig   `yaml:"server"`
	Pipeline *PipelineConfig `yaml:"pipeline"`
	Clinical *ClinicalConfig `yaml:"clinical"`
}

// ServerConfig holds the HTTP surface settings.
type ServerConfig struct {
	Host             string   `yaml:"host"`
	Port             int      `yaml:"port"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
	ShutdownTimeout  Duration `yaml:"shutdown_timeout"`
}

// PipelineConfig tunes the orchestration layer.
type PipelineConfig struct {
	ConfirmationTTL     Duration `yaml:"confirmation_ttl"`
	ConfirmSweep        Duration `yaml:"confirm_sweep_interval"`
	IdempotencyTTL      Duration `yaml:"idempotency_ttl"`
	TracePauseStarted   Duration `yaml:"trace_pause_started"`
	TracePauseRunning   Duration `yaml:"trace_pause_running"`
	TracePauseCompleted Duration `yaml:"trace_pause_completed"`
}

// ClinicalConfig carries the catalogs consulted by risk scoring and
// medical validation. The built-in defaults apply when a list is empty.
type ClinicalConfig struct {
	ControlledSubstances     []string           `yaml:"controlled_substances"`
	AbusePotential           []string           `yaml:"abuse_potential"`
	ScheduleX                []string           `yaml:"schedule_x"`
	ScheduleH                []string           `yaml:"schedule_h"`
	ScheduleH1               []string           `yaml:"schedule_h1"`
	Steroids                 []string           `yaml:"steroids"`
	MaxDailyDoseMg           map[string]float64 `yaml:"max_daily_dose_mg"`
	PrescriptionValidityDays int                `yaml:"prescription_validity_days"`
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Duration parses YAML strings like "5m" into time.Duration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the underlying time.Duration, or fallback when unset.
func (d Duration) Std(fallback time.Duration) time.Duration {
	if d == 0 {
		return fallback
	}
	return time.Duration(d)
}
