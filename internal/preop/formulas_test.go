package preop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	assert.InDelta(t, 22.857, CalculateBMI(70, 175), 0.01)
	assert.InDelta(t, 25.71, CalculateBMI(70, 165), 0.01)
}

func TestCalculateBMIRejectsNonPositiveAndNonFinite(t *testing.T) {
	cases := []struct {
		name     string
		weightKg float64
		heightCm float64
	}{
		{"negative weight", -1, 175},
		{"zero height", 70, 0},
		{"zero weight", 0, 175},
		{"nan weight", math.NaN(), 175},
		{"nan height", 70, math.NaN()},
		{"infinite height", 70, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, math.IsNaN(CalculateBMI(tc.weightKg, tc.heightCm)))
		})
	}
}

func TestCalculateDevineIBW(t *testing.T) {
	assert.InDelta(t, 68.0, CalculateDevineIBW(172, Male), 1e-9)
	assert.InDelta(t, 63.5, CalculateDevineIBW(172, Female), 1e-9)
	assert.True(t, math.IsNaN(CalculateDevineIBW(172, SexUnknown)))
	assert.True(t, math.IsNaN(CalculateDevineIBW(172, ParseSex("X"))))
	assert.True(t, math.IsNaN(CalculateDevineIBW(0, Male)))
	assert.True(t, math.IsNaN(CalculateDevineIBW(math.NaN(), Female)))
}

func TestCalculateDevineIBWIsNotClamped(t *testing.T) {
	// 45.5 + 0.9 × (50 − 152) = -46.3
	assert.InDelta(t, -46.3, CalculateDevineIBW(50, Female), 1e-9)
}

func TestDescribeBMICategoryBoundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{10, "Underweight / Baixo peso"},
		{18.49, "Underweight / Baixo peso"},
		{18.5, "Normal / Eutrófico"},
		{24.99, "Normal / Eutrófico"},
		{25, "Overweight / Sobrepeso"},
		{30, "Obesity I / Obesidade I"},
		{35, "Obesity II / Obesidade II"},
		{39.99, "Obesity II / Obesidade II"},
		{40, "Obesity III / Obesidade III"},
		{72, "Obesity III / Obesidade III"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DescribeBMICategory(tc.bmi), "bmi %v", tc.bmi)
	}
}

func TestDescribeBMICategoryNonFinite(t *testing.T) {
	assert.Equal(t, Placeholder, DescribeBMICategory(math.NaN()))
	assert.Equal(t, Placeholder, DescribeBMICategory(math.Inf(1)))
}

func TestClassifyBMI(t *testing.T) {
	c, ok := ClassifyBMI(31)
	assert.True(t, ok)
	assert.Equal(t, ObesityI, c)
	assert.Equal(t, Bilingual{EN: "Obesity I", PT: "Obesidade I"}, c.Label())

	_, ok = ClassifyBMI(math.NaN())
	assert.False(t, ok)
}

func TestParseSex(t *testing.T) {
	assert.Equal(t, Male, ParseSex("M"))
	assert.Equal(t, Male, ParseSex(" M "))
	assert.Equal(t, Female, ParseSex("F"))
	assert.Equal(t, SexUnknown, ParseSex("m"))
	assert.Equal(t, SexUnknown, ParseSex("f"))
	assert.Equal(t, SexUnknown, ParseSex("male"))
	assert.Equal(t, SexUnknown, ParseSex("feminino"))
	assert.Equal(t, SexUnknown, ParseSex(""))
	assert.Equal(t, SexUnknown, ParseSex("X"))
	assert.Equal(t, "M", Male.Token())
	assert.Equal(t, "", SexUnknown.Token())
}

func TestParseASA(t *testing.T) {
	cases := map[string]ASAClass{
		"I":       ASAI,
		"ii":      ASAII,
		"3":       ASAIII,
		"ASA IV":  ASAIV,
		" asa 5 ": ASAV,
		"VI":      ASAVI,
		"":        ASAUnknown,
		"VII":     ASAUnknown,
		"E":       ASAUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseASA(in), "input %q", in)
	}
	assert.Equal(t, "III", ASAIII.String())
	assert.Equal(t, "", ASAUnknown.String())
	assert.Equal(t, Placeholder, ASAUnknown.Display())
}
