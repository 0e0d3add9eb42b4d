package intake

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is the declared [Min, Max] domain of a numeric field. Label is shown
// at the start of every error message.
type Range struct {
	Min   float64
	Max   float64
	Label string
}

// Declared domains for the body measurements.
var (
	HeightCm = Range{Min: 100, Max: 230, Label: "Height / Altura (cm)"}
	WeightKg = Range{Min: 20, Max: 300, Label: "Weight / Peso (kg)"}
)

// ValidationResult pairs a parsed value with an optional bilingual error.
// Error is empty for an in-range value and for a blank field.
type ValidationResult struct {
	Value float64
	Error string
}

// Provided reports whether the field held anything besides whitespace.
func (r ValidationResult) Provided() bool {
	return r.Error != "" || !math.IsNaN(r.Value)
}

// ValidateNumberInRange parses rawValue and checks it against r.
//
// A blank field is {NaN, ""}: absence is not an error. Unparsable text is
// {NaN, "<label>: invalid value ..."}. A number outside r is returned along
// with a range error so callers can echo it, but the error is blocking.
func ValidateNumberInRange(rawValue any, r Range) ValidationResult {
	text := rawText(rawValue)
	if text == "" {
		return ValidationResult{Value: math.NaN()}
	}

	num := parseText(text)
	if !IsFinite(num) {
		return ValidationResult{
			Value: math.NaN(),
			Error: fmt.Sprintf("%s: invalid value / valor inválido.", r.Label),
		}
	}

	if num < r.Min || num > r.Max {
		lo, hi := formatBound(r.Min), formatBound(r.Max)
		return ValidationResult{
			Value: num,
			Error: fmt.Sprintf("%s: expected between %s and %s. / esperado entre %s e %s.", r.Label, lo, hi, lo, hi),
		}
	}

	return ValidationResult{Value: num}
}

// HasAnyError reports whether at least one of errs is non-empty.
func HasAnyError(errs ...string) bool {
	for _, e := range errs {
		if e != "" {
			return true
		}
	}
	return false
}

// rawText renders rawValue the way the validator reads it. Only strings get
// the comma treatment; other values are printed and trimmed.
func rawText(rawValue any) string {
	switch v := rawValue.(type) {
	case nil:
		return ""
	case string:
		return normalize(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
