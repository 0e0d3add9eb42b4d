package preop

import (
	"fmt"
	"strings"

	"github.com/Skufu/preopcalc/internal/intake"
)

// SummaryFields is everything the pre-operative summary is built from.
// Numeric fields may be NaN. HeightCm and WeightKg are carried for callers
// that echo them; the text itself reports BMI only.
type SummaryFields struct {
	Name        string
	Age         float64
	Sex         Sex
	HeightCm    float64
	WeightKg    float64
	BMI         float64
	ASA         ASAClass
	SurgeryType string
	Notes       string
}

// Section is one language's block of the summary: a header line such as
// "PT:" followed by the body lines. User text may span several lines.
type Section struct {
	Lang  Lang
	Lines []string
}

// Header is the line that opens the section.
func (s Section) Header() string {
	return s.Lang.String() + ":"
}

func (s Section) String() string {
	return s.Header() + "\n" + strings.Join(s.Lines, "\n")
}

// BuildPreOpSummary renders one section per language, PT first, separated
// by a blank line. Each missing field falls back to its own placeholder, so
// the result always has both sections.
func BuildPreOpSummary(f SummaryFields) string {
	return JoinSections(BuildPreOpSections(f))
}

// BuildPreOpSections is BuildPreOpSummary before the sections are joined.
func BuildPreOpSections(f SummaryFields) []Section {
	name := strings.TrimSpace(f.Name)
	surgery := strings.TrimSpace(f.SurgeryType)
	notes := strings.TrimSpace(f.Notes)

	bmi := Placeholder
	if intake.IsFinite(f.BMI) {
		bmi = formatFixed1(f.BMI)
	}

	sections := make([]Section, 0, len(Languages))
	for _, lang := range Languages {
		p := phrasesFor(lang)
		sections = append(sections, Section{
			Lang: lang,
			Lines: []string{
				fmt.Sprintf(p.identity,
					orDefault(name, p.defaultName),
					p.age(f.Age),
					p.sex(f.Sex),
					orDefault(surgery, p.surgeryUnknown)),
				fmt.Sprintf(p.measures, f.ASA.Display(), bmi),
				p.notes(notes),
			},
		})
	}
	return sections
}

// JoinSections is the plain-text form of a summary.
func JoinSections(sections []Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n\n")
}

func (p phrasebook) age(age float64) string {
	if !intake.IsFinite(age) {
		return p.ageUnknown
	}
	return fmt.Sprintf(p.ageFormat, formatNumber(age))
}

func (p phrasebook) sex(s Sex) string {
	switch s {
	case Male:
		return p.sexMale
	case Female:
		return p.sexFemale
	case SexUnknown:
		return p.sexUnknown
	default:
		return p.sexUnknown
	}
}

func (p phrasebook) notes(notes string) string {
	if notes == "" {
		return p.notesNone
	}
	return fmt.Sprintf(p.notesFormat, notes)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
