package preop

import (
	"errors"
	"math"
	"unicode/utf8"

	"github.com/Skufu/preopcalc/internal/intake"
)

// ErrInvalidMeasurements blocks summary generation while height or weight
// carries a validation error.
var ErrInvalidMeasurements = errors.New("please fix invalid height/weight values first")

// Form is the intake form exactly as typed. Every field may be blank or
// malformed.
type Form struct {
	Name        string
	Age         string
	Sex         string
	HeightCm    string
	WeightKg    string
	ASA         string
	SurgeryType string
	Notes       string
}

// Assessment is the outcome of running a Form through validation and the
// formulas. BMI and IBW are NaN whenever either measurement is blank or
// rejected; the rejected value itself stays in Height/Weight for echoing.
type Assessment struct {
	Height   intake.ValidationResult
	Weight   intake.ValidationResult
	Age      float64
	Sex      Sex
	ASA      ASAClass
	BMI      float64
	IBW      float64
	Category string
	Risk     string
}

// HasErrors reports whether any measurement failed validation.
func (a Assessment) HasErrors() bool {
	return intake.HasAnyError(a.Height.Error, a.Weight.Error)
}

// BMIDisplay is the BMI with its unit, e.g. "22.9 kg/m²".
func (a Assessment) BMIDisplay() string {
	return formatMeasure(a.BMI, " kg/m²")
}

// BMIValueDisplay is the BMI without a unit.
func (a Assessment) BMIValueDisplay() string {
	return formatMeasure(a.BMI, "")
}

// IBWDisplay is the ideal body weight with its unit, e.g. "68.0 kg".
func (a Assessment) IBWDisplay() string {
	return formatMeasure(a.IBW, " kg")
}

// Assess validates the measurements and derives everything that can be
// shown before a summary is requested.
func Assess(f Form) Assessment {
	a := Assessment{
		Height: intake.ValidateNumberInRange(f.HeightCm, intake.HeightCm),
		Weight: intake.ValidateNumberInRange(f.WeightKg, intake.WeightKg),
		Age:    intake.ToNumber(f.Age),
		Sex:    ParseSex(f.Sex),
		ASA:    ParseASA(f.ASA),
		BMI:    math.NaN(),
		IBW:    math.NaN(),
	}

	if !a.HasErrors() {
		a.BMI = CalculateBMI(a.Weight.Value, a.Height.Value)
		a.IBW = CalculateDevineIBW(a.Height.Value, a.Sex)
	}

	a.Category = DescribeBMICategory(a.BMI)
	a.Risk = BuildRiskComment(RiskFactors{ASA: a.ASA, BMI: a.BMI, Age: a.Age})
	return a
}

// Summarize assesses f and, when both measurements are acceptable, builds
// the bilingual summary. The Assessment is returned either way.
func Summarize(f Form) (string, Assessment, error) {
	sections, a, err := SummarizeSections(f)
	if err != nil {
		return "", a, err
	}
	return JoinSections(sections), a, nil
}

// SummarizeSections is Summarize for callers that lay the sections out
// themselves.
func SummarizeSections(f Form) ([]Section, Assessment, error) {
	a := Assess(f)
	if a.HasErrors() {
		return nil, a, ErrInvalidMeasurements
	}

	sections := BuildPreOpSections(SummaryFields{
		Name:        f.Name,
		Age:         a.Age,
		Sex:         a.Sex,
		HeightCm:    a.Height.Value,
		WeightKg:    a.Weight.Value,
		BMI:         a.BMI,
		ASA:         a.ASA,
		SurgeryType: f.SurgeryType,
		Notes:       f.Notes,
	})
	return sections, a, nil
}

// SummaryLength counts characters, not bytes.
func SummaryLength(summary string) int {
	return utf8.RuneCountInString(summary)
}

func formatMeasure(v float64, unit string) string {
	if !intake.IsFinite(v) {
		return Placeholder
	}
	return formatFixed1(v) + unit
}
