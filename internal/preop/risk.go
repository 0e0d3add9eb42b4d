package preop

import (
	"strings"

	"github.com/Skufu/preopcalc/internal/intake"
)

const riskSeparator = " · "

var (
	riskMorbidObesity = Bilingual{EN: "morbid obesity", PT: "obesidade mórbida"}
	riskHighBMI       = Bilingual{EN: "high BMI", PT: "IMC elevado"}
	riskElderly       = Bilingual{EN: "elderly", PT: "idoso"}
	riskOlderAdult    = Bilingual{EN: "older adult", PT: "adulto mais velho"}
	riskNone          = Bilingual{EN: "No major modifiers flagged", PT: "Sem modificadores de risco evidentes."}
)

// RiskFactors are the inputs of the risk comment. BMI and Age may be NaN.
type RiskFactors struct {
	ASA ASAClass
	BMI float64
	Age float64
}

// BuildRiskComment lists the modifiers that apply, always in the order ASA,
// weight, age, joined by " · ". With nothing to flag it returns the fixed
// "no modifiers" sentence.
func BuildRiskComment(f RiskFactors) string {
	parts := []string{}

	if f.ASA.Known() {
		parts = append(parts, "ASA "+f.ASA.String())
	}

	if intake.IsFinite(f.BMI) {
		if f.BMI >= 40 {
			parts = append(parts, riskMorbidObesity.String())
		} else if f.BMI >= 35 {
			parts = append(parts, riskHighBMI.String())
		}
	}

	if intake.IsFinite(f.Age) {
		if f.Age >= 70 {
			parts = append(parts, riskElderly.String())
		} else if f.Age >= 60 {
			parts = append(parts, riskOlderAdult.String())
		}
	}

	if len(parts) == 0 {
		return riskNone.String()
	}
	return strings.Join(parts, riskSeparator)
}
