package preop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRiskCommentOrdering(t *testing.T) {
	got := BuildRiskComment(RiskFactors{ASA: ASAIII, BMI: 41, Age: 75})
	assert.Equal(t, "ASA III · morbid obesity / obesidade mórbida · elderly / idoso", got)
}

func TestBuildRiskCommentThresholds(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name string
		in   RiskFactors
		want string
	}{
		{"nothing", RiskFactors{BMI: nan, Age: nan}, "No major modifiers flagged / Sem modificadores de risco evidentes."},
		{"normal bmi and young", RiskFactors{BMI: 24, Age: 30}, "No major modifiers flagged / Sem modificadores de risco evidentes."},
		{"bmi just below high", RiskFactors{BMI: 34.99, Age: nan}, "No major modifiers flagged / Sem modificadores de risco evidentes."},
		{"high bmi", RiskFactors{BMI: 35, Age: nan}, "high BMI / IMC elevado"},
		{"morbid obesity", RiskFactors{BMI: 40, Age: nan}, "morbid obesity / obesidade mórbida"},
		{"older adult", RiskFactors{BMI: nan, Age: 60}, "older adult / adulto mais velho"},
		{"elderly", RiskFactors{BMI: nan, Age: 70}, "elderly / idoso"},
		{"asa only", RiskFactors{ASA: ASAI, BMI: nan, Age: nan}, "ASA I"},
		{"asa and age", RiskFactors{ASA: ASAII, BMI: 22, Age: 65}, "ASA II · older adult / adulto mais velho"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildRiskComment(tc.in))
		})
	}
}

func TestBuildRiskCommentIsPure(t *testing.T) {
	in := RiskFactors{ASA: ASAIV, BMI: 36, Age: 61}
	assert.Equal(t, BuildRiskComment(in), BuildRiskComment(in))
}
