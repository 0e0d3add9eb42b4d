package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Skufu/preopcalc/internal/intake"
	"github.com/Skufu/preopcalc/internal/preop"
)

// field is a raw form value. The frontend sends strings, but JSON numbers
// and null are accepted too and kept as their literal text.
type field string

func (f *field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = field(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("field must be a string or a number: %w", err)
		}
		*f = field(n.String())
		return nil
	}
}

type formRequest struct {
	Name        field `json:"name"`
	Age         field `json:"age"`
	Sex         field `json:"sex"`
	HeightCm    field `json:"heightCm"`
	WeightKg    field `json:"weightKg"`
	ASA         field `json:"asa"`
	SurgeryType field `json:"surgeryType"`
	Notes       field `json:"notes"`
}

func (r formRequest) form() preop.Form {
	return preop.Form{
		Name:        string(r.Name),
		Age:         string(r.Age),
		Sex:         string(r.Sex),
		HeightCm:    string(r.HeightCm),
		WeightKg:    string(r.WeightKg),
		ASA:         string(r.ASA),
		SurgeryType: string(r.SurgeryType),
		Notes:       string(r.Notes),
	}
}

// fieldResult mirrors intake.ValidationResult; Value is null for NaN.
type fieldResult struct {
	Value *float64 `json:"value"`
	Error string   `json:"error,omitempty"`
}

type assessmentResponse struct {
	Height      fieldResult `json:"height"`
	Weight      fieldResult `json:"weight"`
	HasErrors   bool        `json:"hasErrors"`
	Age         *float64    `json:"age"`
	Sex         string      `json:"sex"`
	ASA         string      `json:"asa"`
	BMI         *float64    `json:"bmi"`
	IBW         *float64    `json:"ibwDevine"`
	BMIDisplay  string      `json:"bmiDisplay"`
	IBWDisplay  string      `json:"ibwDisplay"`
	BMIValue    string      `json:"summaryBmi"`
	BMICategory string      `json:"bmiCategory"`
	Risk        string      `json:"risk"`
}

type summaryResponse struct {
	Summary    string             `json:"summary"`
	Length     int                `json:"length"`
	HTML       string             `json:"html,omitempty"`
	Assessment assessmentResponse `json:"assessment"`
}

func newAssessmentResponse(a preop.Assessment) assessmentResponse {
	return assessmentResponse{
		Height:      fieldResult{Value: finite(a.Height.Value), Error: a.Height.Error},
		Weight:      fieldResult{Value: finite(a.Weight.Value), Error: a.Weight.Error},
		HasErrors:   a.HasErrors(),
		Age:         finite(a.Age),
		Sex:         a.Sex.Token(),
		ASA:         a.ASA.Display(),
		BMI:         finite(a.BMI),
		IBW:         finite(a.IBW),
		BMIDisplay:  a.BMIDisplay(),
		IBWDisplay:  a.IBWDisplay(),
		BMIValue:    a.BMIValueDisplay(),
		BMICategory: a.Category,
		Risk:        a.Risk,
	}
}

// finite returns nil for NaN and ±Inf, which encoding/json cannot encode.
func finite(v float64) *float64 {
	if !intake.IsFinite(v) {
		return nil
	}
	return &v
}
