// Package preop holds the pre-operative calculations: BMI, Devine ideal body
// weight, the BMI category, the risk-modifier comment and the bilingual
// summary. Every function is total. Bad input comes back as NaN or the
// placeholder, never as an error or a panic.
package preop

import (
	"math"

	"github.com/Skufu/preopcalc/internal/intake"
)

// CalculateBMI returns weight / height² with height converted to metres.
// Both inputs must be finite and strictly positive, otherwise NaN.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if !intake.IsFinite(weightKg) || !intake.IsFinite(heightCm) || weightKg <= 0 || heightCm <= 0 {
		return math.NaN()
	}
	h := heightCm / 100.0
	return weightKg / (h * h)
}

const devineBaseHeightCm = 152

// CalculateDevineIBW returns the Devine ideal body weight in kg:
//
//	male:   50   + 0.9 × (height − 152)
//	female: 45.5 + 0.9 × (height − 152)
//
// The result is not clamped, so short heights can give implausible values.
// An unknown sex or a non-finite/non-positive height gives NaN.
func CalculateDevineIBW(heightCm float64, sex Sex) float64 {
	if !intake.IsFinite(heightCm) || heightCm <= 0 {
		return math.NaN()
	}

	delta := heightCm - devineBaseHeightCm
	switch sex {
	case Male:
		return 50 + 0.9*delta
	case Female:
		return 45.5 + 0.9*delta
	case SexUnknown:
		return math.NaN()
	default:
		return math.NaN()
	}
}

// BMICategory is one of the six WHO adult BMI bands.
type BMICategory int

const (
	Underweight BMICategory = iota
	Normal
	Overweight
	ObesityI
	ObesityII
	ObesityIII
)

var bmiCategoryLabels = [...]Bilingual{
	Underweight: {EN: "Underweight", PT: "Baixo peso"},
	Normal:      {EN: "Normal", PT: "Eutrófico"},
	Overweight:  {EN: "Overweight", PT: "Sobrepeso"},
	ObesityI:    {EN: "Obesity I", PT: "Obesidade I"},
	ObesityII:   {EN: "Obesity II", PT: "Obesidade II"},
	ObesityIII:  {EN: "Obesity III", PT: "Obesidade III"},
}

// ClassifyBMI returns the band containing bmi. Bands are closed on the left
// and open on the right, and the last one has no upper bound. ok is false
// for a non-finite bmi.
func ClassifyBMI(bmi float64) (category BMICategory, ok bool) {
	if !intake.IsFinite(bmi) {
		return 0, false
	}

	switch {
	case bmi < 18.5:
		return Underweight, true
	case bmi < 25:
		return Normal, true
	case bmi < 30:
		return Overweight, true
	case bmi < 35:
		return ObesityI, true
	case bmi < 40:
		return ObesityII, true
	default:
		return ObesityIII, true
	}
}

// Label returns the category name in both languages.
func (c BMICategory) Label() Bilingual {
	if c < Underweight || c > ObesityIII {
		return Bilingual{}
	}
	return bmiCategoryLabels[c]
}

// DescribeBMICategory returns "EN / PT" for the band bmi falls in, or the
// placeholder when bmi is not finite.
func DescribeBMICategory(bmi float64) string {
	category, ok := ClassifyBMI(bmi)
	if !ok {
		return Placeholder
	}
	return category.Label().String()
}
