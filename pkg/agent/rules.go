package agent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/arogya-labs/aushadhi/pkg/llm"
)

// ValidationRules is the deterministic half of medical validation. The
// clinical catalogs come from config; zero values fall back to the
// defaults below.
type ValidationRules struct {
	// PrescriptionValidityDays rejects prescriptions older than this.
	PrescriptionValidityDays int
	// MaxDailyDoseMg caps total daily intake per active ingredient.
	MaxDailyDoseMg map[string]float64
	// ScheduleX lists substances that are never dispensed here.
	ScheduleX []string
	// ScheduleH and ScheduleH1 list prescription-controlled substances
	// that are dispensable but flagged for the pharmacist.
	ScheduleH  []string
	ScheduleH1 []string
	// Steroids require an explicit prescription review.
	Steroids []string
}

// DefaultRules returns the built-in clinical rule set.
func DefaultRules() ValidationRules {
	return ValidationRules{
		PrescriptionValidityDays: 180,
		MaxDailyDoseMg: map[string]float64{
			"paracetamol": 4000,
			"ibuprofen":   2400,
			"aspirin":     4000,
			"diclofenac":  150,
			"tramadol":    400,
			"codeine":     240,
		},
		ScheduleX:  []string{"alprazolam", "diazepam", "morphine", "methylphenidate"},
		ScheduleH:  []string{"amoxicillin", "azithromycin", "ciprofloxacin", "metformin", "atorvastatin", "omeprazole"},
		ScheduleH1: []string{"tramadol", "codeine", "zolpidem", "cefixime", "levofloxacin"},
		Steroids:   []string{"prednisolone", "dexamethasone", "betamethasone", "hydrocortisone", "deflazacort"},
	}
}

// Finding severities in the prescription rule engine, strongest first.
const (
	SeverityCritical = "CRITICAL"
	SeverityWarning  = "WARNING"
	SeverityInfo     = "INFO"
)

// Issue codes emitted by the rule engine.
const (
	CodeExpiredPrescription = "EXPIRED_PRESCRIPTION"
	CodeFutureDate          = "FUTURE_DATE"
	CodeIllegibleDate       = "ILLEGIBLE_DATE"
	CodeMissingSignature    = "MISSING_SIGNATURE"
	CodeMissingDoctor       = "MISSING_DOCTOR"
	CodeMissingDosage       = "MISSING_DOSAGE"
	CodeMissingFrequency    = "MISSING_FREQUENCY"
	CodeScheduleX           = "SCHEDULE_X"
	CodeScheduleH1          = "SCHEDULE_H1"
	CodeScheduleH           = "SCHEDULE_H"
	CodeSteroid             = "STEROID"
	CodeDoseLimit           = "DOSE_LIMIT_EXCEEDED"
	CodeDuplicateMedicine   = "DUPLICATE_MEDICINE"
	CodeEmergency           = "EMERGENCY"
)

// RuleFinding is one severity-tagged outcome of the rule engine. The
// rendered form is what lands in safety_issues.
type RuleFinding struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

// String renders the finding as a safety issue.
func (f RuleFinding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Code, f.Detail)
}

// riskWeight maps a finding's severity into the cumulative risk score.
func (f RuleFinding) riskWeight() float64 {
	switch f.Severity {
	case SeverityCritical:
		return 0.5
	case SeverityWarning:
		return 0.2
	default:
		return 0.05
	}
}

// RuleReport aggregates the engine's findings. RiskScore accumulates
// severity weights and is later topped up by the interaction bonus,
// capped at 1.0 by the caller.
type RuleReport struct {
	Findings           []RuleFinding
	RiskScore          float64
	RequiresPharmacist bool
}

// Issues renders every finding for safety_issues.
func (r RuleReport) Issues() []string {
	out := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		out = append(out, f.String())
	}
	return out
}

// HasCritical reports whether any finding is critical.
func (r RuleReport) HasCritical() bool {
	return r.hasSeverity(SeverityCritical)
}

// HasWarning reports whether any finding is a warning.
func (r RuleReport) HasWarning() bool {
	return r.hasSeverity(SeverityWarning)
}

func (r RuleReport) hasSeverity(sev string) bool {
	for _, f := range r.Findings {
		if f.Severity == sev {
			return true
		}
	}
	return false
}

func (r *RuleReport) add(severity, code, detail string) {
	f := RuleFinding{Severity: severity, Code: code, Detail: detail}
	r.Findings = append(r.Findings, f)
	r.RiskScore += f.riskWeight()
	if severity != SeverityInfo {
		r.RequiresPharmacist = true
	}
}

// EvaluatePrescription runs the deterministic rule engine over a parsed
// prescription: date window, signature, doctor, per-medicine fields,
// controlled-substance schedules, dose caps, and duplicates.
func (r ValidationRules) EvaluatePrescription(scan *llm.PrescriptionScan, now time.Time) RuleReport {
	var report RuleReport

	r.dateFindings(scan.Date, now, &report)
	if !scan.SignaturePresent {
		report.add(SeverityWarning, CodeMissingSignature, "doctor's signature not detected on the prescription")
	}
	if strings.TrimSpace(scan.DoctorName) == "" {
		report.add(SeverityWarning, CodeMissingDoctor, "prescribing doctor's name not legible")
	}

	names := make([]string, 0, len(scan.Medicines))
	for _, med := range scan.Medicines {
		names = append(names, med.Name)
		if strings.TrimSpace(med.Dosage) == "" {
			report.add(SeverityWarning, CodeMissingDosage, med.Name+": dosage not stated")
		}
		if strings.TrimSpace(med.Frequency) == "" {
			report.add(SeverityWarning, CodeMissingFrequency, med.Name+": frequency not stated")
		}
		r.scheduleFindings(med.Name, &report)
		if issue := r.checkDailyDose(med.Name, med.Dosage, med.Frequency); issue != "" {
			report.add(SeverityWarning, CodeDoseLimit, issue)
		}
	}
	for _, dupe := range findDuplicates(names) {
		report.add(SeverityWarning, CodeDuplicateMedicine, dupe+" is prescribed more than once")
	}
	return report
}

// dateFindings applies the validity window. Undated prescriptions fail
// closed.
func (r ValidationRules) dateFindings(dateStr string, now time.Time, report *RuleReport) {
	if dateStr == "" {
		report.add(SeverityCritical, CodeIllegibleDate, "prescription date not legible")
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		report.add(SeverityCritical, CodeIllegibleDate, fmt.Sprintf("prescription date %q not parseable", dateStr))
		return
	}
	days := r.PrescriptionValidityDays
	if days == 0 {
		days = DefaultRules().PrescriptionValidityDays
	}
	if now.Sub(date) > time.Duration(days)*24*time.Hour {
		report.add(SeverityCritical, CodeExpiredPrescription,
			fmt.Sprintf("prescription dated %s is older than %d days", dateStr, days))
		return
	}
	if date.After(now.Add(24 * time.Hour)) {
		report.add(SeverityCritical, CodeFutureDate, fmt.Sprintf("prescription dated %s is in the future", dateStr))
	}
}

// scheduleFindings flags controlled substances: Schedule X is never
// dispensed, H1 and steroids warn, H is informational.
func (r ValidationRules) scheduleFindings(name string, report *RuleReport) {
	switch {
	case r.isScheduleX(name):
		report.add(SeverityCritical, CodeScheduleX, name+" is a Schedule X substance and cannot be dispensed")
	case matchesCatalog(name, r.listOr(r.ScheduleH1, DefaultRules().ScheduleH1)):
		report.add(SeverityWarning, CodeScheduleH1, name+" is a Schedule H1 substance; dispensing is register-logged")
	case matchesCatalog(name, r.listOr(r.Steroids, DefaultRules().Steroids)):
		report.add(SeverityWarning, CodeSteroid, name+" is a steroid and needs pharmacist review")
	case matchesCatalog(name, r.listOr(r.ScheduleH, DefaultRules().ScheduleH)):
		report.add(SeverityInfo, CodeScheduleH, name+" is a Schedule H substance; prescription retained on file")
	}
}

func (r ValidationRules) listOr(list, fallback []string) []string {
	if len(list) > 0 {
		return list
	}
	return fallback
}

func matchesCatalog(name string, catalog []string) bool {
	lower := strings.ToLower(name)
	for _, entry := range catalog {
		if entry != "" && strings.Contains(lower, strings.ToLower(entry)) {
			return true
		}
	}
	return false
}

var (
	doseMgPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(mg|g|mcg)`)
	// "1-0-1", "twice daily", "TID" and friends.
	dashFreqPattern = regexp.MustCompile(`^\d(?:-\d)+$`)
)

// doseMg extracts the per-intake dose in milligrams, or 0 if no dose is
// stated.
func doseMg(dosage string) float64 {
	m := doseMgPattern.FindStringSubmatch(dosage)
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	switch strings.ToLower(m[2]) {
	case "g":
		return value * 1000
	case "mcg":
		return value / 1000
	default:
		return value
	}
}

// timesPerDay interprets a frequency string. Unknown frequencies default
// to three intakes, the common oral dosing ceiling.
func timesPerDay(frequency string) int {
	freq := strings.ToLower(strings.TrimSpace(frequency))
	if freq == "" {
		return 3
	}
	if dashFreqPattern.MatchString(freq) {
		total := 0
		for _, part := range strings.Split(freq, "-") {
			n, _ := strconv.Atoi(part)
			total += n
		}
		if total > 0 {
			return total
		}
		return 3
	}
	switch {
	case strings.Contains(freq, "once") || strings.Contains(freq, "od") || strings.Contains(freq, "daily at"):
		return 1
	case strings.Contains(freq, "twice") || strings.Contains(freq, "bd") || strings.Contains(freq, "bid"):
		return 2
	case strings.Contains(freq, "thrice") || strings.Contains(freq, "three") || strings.Contains(freq, "tid") || strings.Contains(freq, "tds"):
		return 3
	case strings.Contains(freq, "four") || strings.Contains(freq, "qid"):
		return 4
	}
	return 3
}

// checkDailyDose returns an issue when the stated regimen exceeds the
// cap for a known ingredient. Zero-dose lines (no stated strength) are
// not judged.
func (r ValidationRules) checkDailyDose(name, dosage, frequency string) string {
	mg := doseMg(dosage)
	if mg == 0 {
		mg = doseMg(name)
	}
	if mg == 0 {
		return ""
	}

	lower := strings.ToLower(name)
	for ingredient, capMg := range r.maxDoses() {
		if !strings.Contains(lower, ingredient) {
			continue
		}
		daily := mg * float64(timesPerDay(frequency))
		if daily > capMg {
			return fmt.Sprintf("%s: %.0fmg/day exceeds the %.0fmg daily limit", name, daily, capMg)
		}
	}
	return ""
}

func (r ValidationRules) maxDoses() map[string]float64 {
	if len(r.MaxDailyDoseMg) > 0 {
		return r.MaxDailyDoseMg
	}
	return DefaultRules().MaxDailyDoseMg
}

// isScheduleX reports whether a medicine is on the never-dispense list.
func (r ValidationRules) isScheduleX(name string) bool {
	return matchesCatalog(name, r.listOr(r.ScheduleX, DefaultRules().ScheduleX))
}

// findDuplicates returns medicine names that appear more than once,
// normalized case-insensitively.
func findDuplicates(names []string) []string {
	counts := make(map[string]int, len(names))
	display := make(map[string]string, len(names))
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		counts[key]++
		if _, ok := display[key]; !ok {
			display[key] = n
		}
	}
	var dupes []string
	for key, c := range counts {
		if c > 1 {
			dupes = append(dupes, display[key])
		}
	}
	return dupes
}

// redFlagIn scans free text for the emergency keywords.
func redFlagIn(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range llm.RedFlagKeywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return ""
}
