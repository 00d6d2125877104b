package requests

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CoercedNumber is a float64 that decodes leniently. It accepts a JSON
// number, a quoted numeric string, or null; anything unparseable decodes to
// zero instead of failing the request, so a half-typed form value never
// breaks a calculation.
type CoercedNumber float64

// UnmarshalJSON never returns an error for a syntactically valid JSON value
func (n *CoercedNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = CoercedNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			*n = 0
			return nil
		}
		*n = CoercedNumber(v)
		return nil
	}

	*n = 0
	return nil
}

// Float64 returns the coerced value
func (n CoercedNumber) Float64() float64 {
	return float64(n)
}

// MonthMultipliers is the ramp-stage multiplier triple for a settings
// override. Unlike the coerced calculation fields, settings are validated: an
// override must carry exactly three values, each in [0,1], or the decode
// fails.
type MonthMultipliers [3]float64

// UnmarshalJSON rejects any shape other than a three-element array in range
func (m *MonthMultipliers) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) != len(m) {
		return errors.Errorf("expected %d month multipliers, got %d", len(m), len(values))
	}
	for i, v := range values {
		if v < 0 || v > 1 {
			return errors.Errorf("month multiplier %v out of range [0,1]", v)
		}
		m[i] = v
	}
	return nil
}

// CalculateCommissionRequest represents a request to calculate one month of
// commission. Every calculation field is coerced, not validated: garbage
// values flow through the math as zero. CommissionAtQuota and
// MonthMultipliers fall back to the server settings when omitted; a present
// MonthMultipliers override is validated, not coerced.
type CalculateCommissionRequest struct {
	RampStage         CoercedNumber     `json:"ramp_stage"`
	WorkingDays       CoercedNumber     `json:"working_days"`
	ActualQDCs        CoercedNumber     `json:"actual_qdcs"`
	CommissionAtQuota *CoercedNumber    `json:"commission_at_quota,omitempty"`
	MonthMultipliers  *MonthMultipliers `json:"month_multipliers,omitempty"`
}
