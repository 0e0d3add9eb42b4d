package intake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBlankIsNotAnError(t *testing.T) {
	for _, raw := range []any{"", "   ", nil} {
		res := ValidateNumberInRange(raw, Range{Min: 0, Max: 10, Label: "X"})
		assert.True(t, math.IsNaN(res.Value))
		assert.Empty(t, res.Error)
		assert.False(t, res.Provided())
	}
}

func TestValidateUnparsable(t *testing.T) {
	res := ValidateNumberInRange("tall", HeightCm)
	assert.True(t, math.IsNaN(res.Value))
	assert.Equal(t, "Height / Altura (cm): invalid value / valor inválido.", res.Error)
	assert.True(t, res.Provided())
}

func TestValidateInfinityIsInvalid(t *testing.T) {
	res := ValidateNumberInRange("1e400", WeightKg)
	assert.True(t, math.IsNaN(res.Value))
	assert.Contains(t, res.Error, "invalid value")
}

func TestValidateOutOfRangeKeepsValue(t *testing.T) {
	res := ValidateNumberInRange("150", Range{Min: 100, Max: 120, Label: "X"})
	assert.Equal(t, 150.0, res.Value)
	require.NotEmpty(t, res.Error)
	assert.Equal(t, "X: expected between 100 and 120. / esperado entre 100 e 120.", res.Error)
}

func TestValidateBoundsAreInclusive(t *testing.T) {
	for _, raw := range []string{"20", "300", "20,0"} {
		res := ValidateNumberInRange(raw, WeightKg)
		assert.Empty(t, res.Error, "input %q", raw)
	}
	res := ValidateNumberInRange("19,9", WeightKg)
	assert.Equal(t, 19.9, res.Value)
	assert.NotEmpty(t, res.Error)
}

func TestValidateInRange(t *testing.T) {
	res := ValidateNumberInRange(" 172,5 ", HeightCm)
	assert.Equal(t, 172.5, res.Value)
	assert.Empty(t, res.Error)
}

func TestValidateNonStringValues(t *testing.T) {
	res := ValidateNumberInRange(175.0, HeightCm)
	assert.Equal(t, 175.0, res.Value)
	assert.Empty(t, res.Error)

	res = ValidateNumberInRange(70, WeightKg)
	assert.Equal(t, 70.0, res.Value)
	assert.Empty(t, res.Error)

	res = ValidateNumberInRange(math.NaN(), WeightKg)
	assert.True(t, math.IsNaN(res.Value))
	assert.NotEmpty(t, res.Error)
}

func TestValidateFractionalBoundsFormatting(t *testing.T) {
	res := ValidateNumberInRange("3", Range{Min: 0.5, Max: 2.25, Label: "Dose"})
	assert.Equal(t, "Dose: expected between 0.5 and 2.25. / esperado entre 0.5 e 2.25.", res.Error)
}

func TestHasAnyError(t *testing.T) {
	assert.False(t, HasAnyError())
	assert.False(t, HasAnyError("", ""))
	assert.True(t, HasAnyError("", "Weight: invalid"))
}
