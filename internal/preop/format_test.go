package preop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFixed1RoundsTiesAwayFromZero(t *testing.T) {
	cases := map[float64]string{
		22.25:  "22.3",
		1.25:   "1.3",
		0.25:   "0.3",
		-1.25:  "-1.3",
		0.05:   "0.1",
		2.45:   "2.5",
		22.857: "22.9",
		40:     "40.0",
		0:      "0.0",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatFixed1(in), "input %v", in)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{45, "45"},
		{80.5, "80.5"},
		{math.Copysign(0, -1), "0"},
		{-3, "-3"},
		{1e21, "1e+21"},
		{1.5e21, "1.5e+21"},
		{1e-7, "1e-7"},
		{0.000001, "0.000001"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatNumber(tc.in), "input %v", tc.in)
	}
}
