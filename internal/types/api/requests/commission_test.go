package requests_test

import (
	"encoding/json"
	"testing"

	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/types/api/requests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoercedNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected float64
	}{
		{name: "plain number", payload: `17`, expected: 17},
		{name: "decimal number", payload: `17.5`, expected: 17.5},
		{name: "negative number passes through", payload: `-4`, expected: -4},
		{name: "quoted number", payload: `"20"`, expected: 20},
		{name: "quoted decimal with spaces", payload: `" 19.5 "`, expected: 19.5},
		{name: "null", payload: `null`, expected: 0},
		{name: "garbage text", payload: `"abc"`, expected: 0},
		{name: "empty string", payload: `""`, expected: 0},
		{name: "quoted NaN", payload: `"NaN"`, expected: 0},
		{name: "quoted infinity", payload: `"Inf"`, expected: 0},
		{name: "boolean", payload: `true`, expected: 0},
		{name: "object", payload: `{"value": 5}`, expected: 0},
		{name: "array", payload: `[1, 2]`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n requests.CoercedNumber
			err := json.Unmarshal([]byte(tt.payload), &n)

			require.NoError(t, err)
			assert.InDelta(t, tt.expected, n.Float64(), 0.0001)
		})
	}
}

func TestCalculateCommissionRequest_Decode(t *testing.T) {
	t.Run("typed form values decode as sent", func(t *testing.T) {
		body := `{"ramp_stage": 3, "working_days": "20", "actual_qdcs": 19, "commission_at_quota": 1250}`

		var req requests.CalculateCommissionRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		assert.InDelta(t, 3, req.RampStage.Float64(), 0.0001)
		assert.InDelta(t, 20, req.WorkingDays.Float64(), 0.0001)
		assert.InDelta(t, 19, req.ActualQDCs.Float64(), 0.0001)
		require.NotNil(t, req.CommissionAtQuota)
		assert.InDelta(t, 1250, req.CommissionAtQuota.Float64(), 0.0001)
		assert.Nil(t, req.MonthMultipliers)
	})

	t.Run("garbage in a numeric field decodes to zero, not an error", func(t *testing.T) {
		body := `{"ramp_stage": 3, "working_days": "abc", "actual_qdcs": 19}`

		var req requests.CalculateCommissionRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		assert.Zero(t, req.WorkingDays.Float64())
		assert.Nil(t, req.CommissionAtQuota)
	})

	t.Run("month multipliers override decodes as a triple", func(t *testing.T) {
		body := `{"ramp_stage": 1, "working_days": 20, "actual_qdcs": 5, "month_multipliers": [0.25, 0.5, 0.75]}`

		var req requests.CalculateCommissionRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		require.NotNil(t, req.MonthMultipliers)
		assert.Equal(t, requests.MonthMultipliers{0.25, 0.5, 0.75}, *req.MonthMultipliers)
	})

	t.Run("month multipliers with too few values fail the decode", func(t *testing.T) {
		body := `{"ramp_stage": 1, "working_days": 20, "actual_qdcs": 5, "month_multipliers": [0.5, 0.9]}`

		var req requests.CalculateCommissionRequest
		err := json.Unmarshal([]byte(body), &req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 3 month multipliers")
	})

	t.Run("month multipliers with too many values fail the decode", func(t *testing.T) {
		body := `{"ramp_stage": 1, "working_days": 20, "actual_qdcs": 5, "month_multipliers": [0.1, 0.2, 0.3, 0.4]}`

		var req requests.CalculateCommissionRequest
		err := json.Unmarshal([]byte(body), &req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 3 month multipliers")
	})

	t.Run("month multipliers out of range fail the decode", func(t *testing.T) {
		body := `{"ramp_stage": 1, "working_days": 20, "actual_qdcs": 5, "month_multipliers": [0.19, 1.60, 0.86]}`

		var req requests.CalculateCommissionRequest
		err := json.Unmarshal([]byte(body), &req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}
