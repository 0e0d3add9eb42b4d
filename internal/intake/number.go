// Package intake turns raw form fields into numbers and checks them against
// declared domains. Nothing here returns an error: an unusable value is NaN,
// and a problem worth showing to the user is a bilingual message string.
package intake

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	radixLiteral   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// ToNumber converts a raw field into a float64.
//
// Numeric values are returned unchanged, NaN and ±Inf included. Strings are
// trimmed, the first comma becomes a decimal point, and the rest must be a
// decimal literal, an unsigned 0x/0o/0b integer, or a signed "Infinity". A blank string is NaN, never zero, so "absent" stays
// distinguishable from "0". Any other type is NaN.
func ToNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		return parseText(normalize(v))
	case fmt.Stringer:
		// json.Number and friends arrive here.
		return parseText(normalize(v.String()))
	default:
		return math.NaN()
	}
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// normalize trims whitespace and swaps the first comma for a period.
func normalize(s string) string {
	return strings.Replace(strings.TrimSpace(s), ",", ".", 1)
}

func parseText(s string) float64 {
	switch s {
	case "":
		return math.NaN()
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if radixLiteral.MatchString(s) {
		return parseRadix(s)
	}
	// ParseFloat alone would also take "inf", "nan", hex floats and
	// underscores.
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Literals past float64 range overflow to ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return n
		}
		return math.NaN()
	}
	return n
}

func parseRadix(s string) float64 {
	base := 16
	switch s[1] {
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	}
	i, ok := new(big.Int).SetString(s[2:], base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}
