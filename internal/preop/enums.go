package preop

import "strings"

// Sex is the patient's sex as far as the formulas care.
type Sex int

const (
	SexUnknown Sex = iota
	Male
	Female
)

// ParseSex accepts exactly "M" or "F", ignoring surrounding space.
// Everything else, lowercase and blank included, is SexUnknown.
func ParseSex(token string) Sex {
	switch strings.TrimSpace(token) {
	case "M":
		return Male
	case "F":
		return Female
	default:
		return SexUnknown
	}
}

// Token returns the single-letter form used by the intake form.
func (s Sex) Token() string {
	switch s {
	case Male:
		return "M"
	case Female:
		return "F"
	case SexUnknown:
		return ""
	default:
		return ""
	}
}

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	case SexUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// ASAClass is the ASA physical-status class.
type ASAClass int

const (
	ASAUnknown ASAClass = iota
	ASAI
	ASAII
	ASAIII
	ASAIV
	ASAV
	ASAVI
)

var asaNumerals = [...]string{
	ASAUnknown: "",
	ASAI:       "I",
	ASAII:      "II",
	ASAIII:     "III",
	ASAIV:      "IV",
	ASAV:       "V",
	ASAVI:      "VI",
}

// ParseASA accepts a roman numeral or a digit from 1 to 6, optionally
// prefixed with "ASA". Anything else is ASAUnknown.
func ParseASA(token string) ASAClass {
	t := strings.ToUpper(strings.TrimSpace(token))
	t = strings.TrimSpace(strings.TrimPrefix(t, "ASA"))
	switch t {
	case "I", "1":
		return ASAI
	case "II", "2":
		return ASAII
	case "III", "3":
		return ASAIII
	case "IV", "4":
		return ASAIV
	case "V", "5":
		return ASAV
	case "VI", "6":
		return ASAVI
	default:
		return ASAUnknown
	}
}

// Known reports whether a class was supplied.
func (a ASAClass) Known() bool {
	return a >= ASAI && a <= ASAVI
}

// String returns the roman numeral, or "" for ASAUnknown.
func (a ASAClass) String() string {
	if !a.Known() {
		return ""
	}
	return asaNumerals[a]
}

// Display is String with the placeholder for an unknown class.
func (a ASAClass) Display() string {
	if !a.Known() {
		return Placeholder
	}
	return a.String()
}
