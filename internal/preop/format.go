package preop

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/Skufu/preopcalc/internal/intake"
)

var half = big.NewFloat(0.5)

// formatFixed1 prints v with one decimal, rounding an exact tie away from
// zero (22.25 -> "22.3"). FormatFloat alone would round it to even.
func formatFixed1(v float64) string {
	if !intake.IsFinite(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	if math.Abs(v) >= 1e21 {
		return formatNumber(v)
	}

	// |v|*10 needs at most 57 bits, so 128 keeps every step exact.
	x := new(big.Float).SetPrec(128).SetFloat64(math.Abs(v))
	x.Mul(x, big.NewFloat(10))
	whole, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(128).Sub(x, new(big.Float).SetInt(whole))
	if frac.Cmp(half) != 0 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	digits := whole.Add(whole, big.NewInt(1)).String()
	if len(digits) < 2 {
		digits = "0" + digits
	}
	s := digits[:len(digits)-1] + "." + digits[len(digits)-1:]
	if v < 0 {
		s = "-" + s
	}
	return s
}

// formatNumber prints v in shortest form: plain decimals in [1e-6, 1e21),
// exponent notation outside it, and zero without a sign.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	a := math.Abs(v)
	if a >= 1e21 || a < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
