package responses

// CommissionResponse represents a computed commission in API responses.
// Raw values carry full float precision for callers that keep calculating;
// the display fields are preformatted for the summary panel.
type CommissionResponse struct {
	QuotaQDCs         int64                  `json:"quota_qdcs"`
	ActualQDCs        float64                `json:"actual_qdcs"`
	MonthMultiplier   float64                `json:"month_multiplier"`
	QuotaAttainment   float64                `json:"quota_attainment"`
	AttainmentDisplay string                 `json:"attainment_display"`
	TierMultiplier    float64                `json:"tier_multiplier"`
	Commission        float64                `json:"commission"`
	CommissionCents   int64                  `json:"commission_cents"`
	CommissionDisplay string                 `json:"commission_display"`
	Currency          string                 `json:"currency"`
	Explanation       string                 `json:"explanation"`
	Calculation       map[string]interface{} `json:"calculation"`
}

// CommissionConfigResponse represents the active commission settings
type CommissionConfigResponse struct {
	CommissionAtQuota float64    `json:"commission_at_quota"`
	MonthMultipliers  [3]float64 `json:"month_multipliers"`
}

// AttainmentTierResponse represents one row of the payout schedule
type AttainmentTierResponse struct {
	Threshold  float64 `json:"threshold"`
	Multiplier float64 `json:"multiplier"`
}

// TierScheduleResponse represents the full payout schedule, highest tier first
type TierScheduleResponse struct {
	Tiers []AttainmentTierResponse `json:"tiers"`
}
