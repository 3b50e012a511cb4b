package config

import "time"

// Built-in defaults, applied after YAML parsing. User lists replace,
// not merge with, the built-in clinical catalogs.
func applyDefaults(cfg *Config) {
	if cfg.Server == nil {
		cfg.Server = &ServerConfig{}
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = Duration(10 * time.Second)
	}

	if cfg.Pipeline == nil {
		cfg.Pipeline = &PipelineConfig{}
	}
	if cfg.Pipeline.ConfirmationTTL == 0 {
		cfg.Pipeline.ConfirmationTTL = Duration(5 * time.Minute)
	}
	if cfg.Pipeline.ConfirmSweep == 0 {
		cfg.Pipeline.ConfirmSweep = Duration(time.Minute)
	}
	if cfg.Pipeline.IdempotencyTTL == 0 {
		cfg.Pipeline.IdempotencyTTL = Duration(60 * time.Second)
	}
	if cfg.Pipeline.TracePauseStarted == 0 {
		cfg.Pipeline.TracePauseStarted = Duration(300 * time.Millisecond)
	}
	if cfg.Pipeline.TracePauseRunning == 0 {
		cfg.Pipeline.TracePauseRunning = Duration(100 * time.Millisecond)
	}
	if cfg.Pipeline.TracePauseCompleted == 0 {
		cfg.Pipeline.TracePauseCompleted = Duration(500 * time.Millisecond)
	}

	if cfg.Clinical == nil {
		cfg.Clinical = &ClinicalConfig{}
	}
	if len(cfg.Clinical.ControlledSubstances) == 0 {
		cfg.Clinical.ControlledSubstances = []string{
			"tramadol", "codeine", "alprazolam", "diazepam",
			"lorazepam", "clonazepam", "zolpidem", "morphine",
			"pentazocine", "buprenorphine",
		}
	}
	if len(cfg.Clinical.AbusePotential) == 0 {
		cfg.Clinical.AbusePotential = []string{
			"tramadol", "codeine", "dextromethorphan",
			"pregabalin", "alprazolam", "zolpidem",
		}
	}
	if len(cfg.Clinical.ScheduleX) == 0 {
		cfg.Clinical.ScheduleX = []string{
			"alprazolam", "diazepam", "morphine", "methylphenidate",
		}
	}
	if len(cfg.Clinical.ScheduleH) == 0 {
		cfg.Clinical.ScheduleH = []string{
			"amoxicillin", "azithromycin", "ciprofloxacin",
			"metformin", "atorvastatin", "omeprazole",
		}
	}
	if len(cfg.Clinical.ScheduleH1) == 0 {
		cfg.Clinical.ScheduleH1 = []string{
			"tramadol", "codeine", "zolpidem", "cefixime", "levofloxacin",
		}
	}
	if len(cfg.Clinical.Steroids) == 0 {
		cfg.Clinical.Steroids = []string{
			"prednisolone", "dexamethasone", "betamethasone",
			"hydrocortisone", "deflazacort",
		}
	}
	if len(cfg.Clinical.MaxDailyDoseMg) == 0 {
		cfg.Clinical.MaxDailyDoseMg = map[string]float64{
			"paracetamol": 4000,
			"ibuprofen":   2400,
			"aspirin":     4000,
			"diclofenac":  150,
			"tramadol":    400,
			"codeine":     240,
		}
	}
	if cfg.Clinical.PrescriptionValidityDays == 0 {
		cfg.Clinical.PrescriptionValidityDays = 180
	}
}
