package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestInitializeDefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout.Std(0))
	assert.Equal(t, 5*time.Minute, cfg.Pipeline.ConfirmationTTL.Std(0))
	assert.Equal(t, 180, cfg.Clinical.PrescriptionValidityDays)
	assert.Contains(t, cfg.Clinical.ControlledSubstances, "tramadol")
	assert.Contains(t, cfg.Clinical.ScheduleX, "alprazolam")
	assert.Equal(t, float64(4000), cfg.Clinical.MaxDailyDoseMg["paracetamol"])
}

func TestInitializeParsesYAML(t *testing.T) {
	dir := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  allowed_ws_origins:
    - https://pharmacy.example.com
pipeline:
  confirmation_ttl: 2m
  trace_pause_started: 50ms
clinical:
  schedule_x:
    - ketamine
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://pharmacy.example.com"}, cfg.Server.AllowedWSOrigins)
	assert.Equal(t, 2*time.Minute, cfg.Pipeline.ConfirmationTTL.Std(0))
	assert.Equal(t, 50*time.Millisecond, cfg.Pipeline.TracePauseStarted.Std(0))

	// User lists replace the built-in catalogs entirely.
	assert.Equal(t, []string{"ketamine"}, cfg.Clinical.ScheduleX)
	// Omitted sections still default.
	assert.Equal(t, time.Minute, cfg.Pipeline.ConfirmSweep.Std(0))
	assert.Contains(t, cfg.Clinical.ControlledSubstances, "codeine")
	assert.Equal(t, dir, cfg.ConfigDir())
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("AUSHADHI_TEST_PORT", "8443")
	dir := writeConfig(t, `
server:
  port: {{.AUSHADHI_TEST_PORT}}
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, 8443, cfg.Server.Port)
}

func TestInitializeRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"port out of range": `
server:
  port: 70000
`,
		"negative dose cap": `
clinical:
  max_daily_dose_mg:
    paracetamol: -1
`,
		"unparseable duration": `
pipeline:
  confirmation_ttl: "soon"
`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Initialize(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestDurationUnmarshal(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalYAML(func(v any) error {
		*(v.(*string)) = "1h30m"
		return nil
	}))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	assert.Error(t, d.UnmarshalYAML(func(v any) error {
		*(v.(*string)) = "not-a-duration"
		return nil
	}))
}
