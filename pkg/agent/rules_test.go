package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arogya-labs/aushadhi/pkg/llm"
)

func TestDoseMg(t *testing.T) {
	assert.Equal(t, 500.0, doseMg("500mg"))
	assert.Equal(t, 500.0, doseMg("500 mg twice daily"))
	assert.Equal(t, 1000.0, doseMg("1g"))
	assert.Equal(t, 0.5, doseMg("500mcg"))
	assert.Equal(t, 0.0, doseMg("one tablet"))
}

func TestTimesPerDay(t *testing.T) {
	assert.Equal(t, 1, timesPerDay("once daily"))
	assert.Equal(t, 2, timesPerDay("twice a day"))
	assert.Equal(t, 2, timesPerDay("BD"))
	assert.Equal(t, 3, timesPerDay("TID"))
	assert.Equal(t, 4, timesPerDay("QID"))
	assert.Equal(t, 2, timesPerDay("1-0-1"))
	assert.Equal(t, 3, timesPerDay("1-1-1"))
	assert.Equal(t, 3, timesPerDay(""), "unknown frequency assumes three intakes")
}

func TestCheckDailyDose(t *testing.T) {
	r := DefaultRules()

	// 1000mg x 3 = 3000mg/day, under the 4000mg paracetamol cap.
	assert.Empty(t, r.checkDailyDose("Paracetamol", "1000mg", "1-1-1"))

	// 1000mg x 4 = 4000mg is at the cap, not over it.
	assert.Empty(t, r.checkDailyDose("Paracetamol", "1000mg", "QID"))

	// 650mg x 4 = 2600mg ibuprofen exceeds 2400mg.
	issue := r.checkDailyDose("Ibuprofen", "650mg", "four times daily")
	assert.Contains(t, issue, "exceeds")

	// Strength embedded in the name still counts.
	issue = r.checkDailyDose("Diclofenac 100mg", "", "1-0-1")
	assert.Contains(t, issue, "exceeds")

	// Unknown ingredients are not judged.
	assert.Empty(t, r.checkDailyDose("Cetirizine", "10mg", "QID"))

	// No stated strength cannot be judged.
	assert.Empty(t, r.checkDailyDose("Paracetamol", "", "QID"))
}

func TestDateFindings(t *testing.T) {
	r := DefaultRules()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	codeFor := func(dateStr string) string {
		var report RuleReport
		r.dateFindings(dateStr, now, &report)
		if len(report.Findings) == 0 {
			return ""
		}
		return report.Findings[0].Code
	}

	assert.Equal(t, "", codeFor("2026-07-01"))
	assert.Equal(t, CodeExpiredPrescription, codeFor("2025-09-01"))
	assert.Equal(t, CodeIllegibleDate, codeFor(""), "undated prescriptions fail closed")
	assert.Equal(t, CodeIllegibleDate, codeFor("01/07/2026"), "unparseable dates fail closed")
	assert.Equal(t, CodeFutureDate, codeFor("2026-09-15"))
}

func TestEvaluatePrescriptionAccumulatesFindings(t *testing.T) {
	r := DefaultRules()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	report := r.EvaluatePrescription(&llm.PrescriptionScan{
		Date:             "2026-07-15",
		DoctorName:       "Dr. Rao",
		SignaturePresent: true,
		Medicines: []llm.ScannedMedicine{
			{Name: "Tramadol 50mg", Dosage: "50mg", Frequency: "BD"},
			{Name: "Amoxicillin", Dosage: "500mg", Frequency: "TID"},
		},
	}, now)

	assert.False(t, report.HasCritical())
	assert.True(t, report.HasWarning(), "Schedule H1 warns")

	codes := make([]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		codes = append(codes, f.Code)
	}
	assert.Contains(t, codes, CodeScheduleH1)
	assert.Contains(t, codes, CodeScheduleH)
	assert.InDelta(t, 0.25, report.RiskScore, 1e-9, "one warning plus one info finding")
}

func TestEvaluatePrescriptionScheduleXIsCritical(t *testing.T) {
	r := DefaultRules()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	report := r.EvaluatePrescription(&llm.PrescriptionScan{
		Date:             "2026-07-15",
		DoctorName:       "Dr. Rao",
		SignaturePresent: true,
		Medicines: []llm.ScannedMedicine{
			{Name: "Alprazolam 0.5mg", Dosage: "0.5mg", Frequency: "HS"},
		},
	}, now)

	assert.True(t, report.HasCritical())
	assert.Equal(t, CodeScheduleX, report.Findings[0].Code)
	assert.Contains(t, report.Findings[0].String(), "[CRITICAL]")
}

func TestIsScheduleX(t *testing.T) {
	r := DefaultRules()
	assert.True(t, r.isScheduleX("Alprazolam 0.25mg"))
	assert.True(t, r.isScheduleX("MORPHINE SULFATE"))
	assert.False(t, r.isScheduleX("Paracetamol"))
}

func TestFindDuplicates(t *testing.T) {
	dupes := findDuplicates([]string{"Crocin", "crocin ", "Dolo 650"})
	assert.Equal(t, []string{"Crocin"}, dupes)

	assert.Empty(t, findDuplicates([]string{"A", "B"}))
}

func TestRedFlagIn(t *testing.T) {
	assert.Equal(t, "chest pain", redFlagIn("I have Chest Pain since morning"))
	assert.Equal(t, "", redFlagIn("mild headache"))
}
