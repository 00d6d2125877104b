package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/constants"
	"github.com/pkg/errors"
)

// CommissionCalculator handles all commission calculations for SDR monthly payouts
type CommissionCalculator struct {
	// Can add per-team tier schedules here if needed
}

// NewCommissionCalculator creates a new commission calculator
func NewCommissionCalculator() *CommissionCalculator {
	return &CommissionCalculator{}
}

// CommissionConfig holds the editable commission settings
type CommissionConfig struct {
	CommissionAtQuota float64    `json:"commission_at_quota"`
	MonthMultipliers  [3]float64 `json:"month_multipliers"`
}

// PerformanceInput describes one month of SDR output
type PerformanceInput struct {
	RampStage   int     `json:"ramp_stage"`
	WorkingDays float64 `json:"working_days"`
	ActualQDCs  float64 `json:"actual_qdcs"`
}

// CommissionResult contains the result of a commission calculation
type CommissionResult struct {
	MonthMultiplier float64                `json:"month_multiplier"`
	QuotaQDCs       int64                  `json:"quota_qdcs"`
	QuotaAttainment float64                `json:"quota_attainment"`
	TierMultiplier  float64                `json:"tier_multiplier"`
	Commission      float64                `json:"commission"`
	Calculation     map[string]interface{} `json:"calculation"`
}

// AttainmentTier is one row of the payout schedule
type AttainmentTier struct {
	Threshold  float64 `json:"threshold"`
	Multiplier float64 `json:"multiplier"`
}

const defaultCommissionAtQuota = 1250

var defaultMonthMultipliers = [3]float64{0.19, 0.60, 0.86}

// attainmentTiers is the payout schedule, ordered from highest threshold to
// lowest. Lower bounds are closed: the first threshold at or below the
// attainment wins.
var attainmentTiers = []AttainmentTier{
	{Threshold: 1.10, Multiplier: 1.15},
	{Threshold: 1.00, Multiplier: 1.00},
	{Threshold: 0.50, Multiplier: 0.75},
	{Threshold: 0, Multiplier: 0.50},
}

// DefaultCommissionConfig returns the shipped commission settings: $1,250 at
// quota and ramp-stage multipliers of 0.19, 0.60 and 0.86.
func DefaultCommissionConfig() CommissionConfig {
	return CommissionConfig{
		CommissionAtQuota: defaultCommissionAtQuota,
		MonthMultipliers:  defaultMonthMultipliers,
	}
}

// Calculate computes the commission payout for one month of SDR performance.
// It is pure and never returns an error: identical config and input always
// produce an identical result, malformed values degrade to zero and
// out-of-range values clamp into range.
//
// Quota QDCs round half away from zero.
func (cc *CommissionCalculator) Calculate(config CommissionConfig, input PerformanceInput) *CommissionResult {
	workingDays := clampNonNegative(input.WorkingDays)
	actualQDCs := clampNonNegative(input.ActualQDCs)
	commissionAtQuota := clampNonNegative(config.CommissionAtQuota)

	// The engine never computes with a stage of zero
	stage := clampRampStage(input.RampStage)
	monthMultiplier := clampFraction(config.MonthMultipliers[stage-1])

	// Float to integer conversion is unspecified outside the int64 range, so
	// an oversized product saturates at the maximum count
	rounded := math.Round(workingDays * monthMultiplier)
	var quotaQDCs int64
	if rounded >= math.MaxInt64 {
		quotaQDCs = math.MaxInt64
	} else {
		quotaQDCs = int64(rounded)
	}

	// A zero quota yields zero attainment, never a division error
	attainment := 0.0
	if quotaQDCs > 0 {
		attainment = actualQDCs / float64(quotaQDCs)
	}

	tierMultiplier := cc.tierMultiplierFor(attainment)
	commission := attainment * tierMultiplier * commissionAtQuota

	return &CommissionResult{
		MonthMultiplier: monthMultiplier,
		QuotaQDCs:       quotaQDCs,
		QuotaAttainment: attainment,
		TierMultiplier:  tierMultiplier,
		Commission:      commission,
		Calculation: map[string]interface{}{
			"ramp_stage":          stage,
			"working_days":        workingDays,
			"month_multiplier":    monthMultiplier,
			"quota_qdcs":          quotaQDCs,
			"actual_qdcs":         actualQDCs,
			"quota_attainment":    attainment,
			"tier_multiplier":     tierMultiplier,
			"commission_at_quota": commissionAtQuota,
		},
	}
}

// tierMultiplierFor selects the payout multiplier for an attainment ratio.
// Tiers are evaluated high to low; the first match wins.
func (cc *CommissionCalculator) tierMultiplierFor(attainment float64) float64 {
	for _, tier := range attainmentTiers {
		if attainment >= tier.Threshold {
			return tier.Multiplier
		}
	}
	return attainmentTiers[len(attainmentTiers)-1].Multiplier
}

// TierSchedule returns a copy of the payout schedule, ordered from highest
// threshold to lowest.
func (cc *CommissionCalculator) TierSchedule() []AttainmentTier {
	schedule := make([]AttainmentTier, len(attainmentTiers))
	copy(schedule, attainmentTiers)
	return schedule
}

// FormatCommissionExplanation creates a human-readable explanation of the payout
func (cc *CommissionCalculator) FormatCommissionExplanation(result *CommissionResult) string {
	if result.QuotaQDCs == 0 {
		return "No quota for this period, so no commission is due."
	}
	if result.QuotaAttainment >= 1.10 {
		return "Quota exceeded by 10% or more. The accelerator multiplier applies to the full attainment."
	}
	if result.QuotaAttainment >= 1.00 {
		return "Quota met in full. Commission pays out at the full rate."
	}
	if result.QuotaAttainment >= 0.50 {
		return "Quota partially met. Commission pays out at the reduced tier rate."
	}
	return "Attainment below half of quota. Commission pays out at the minimum tier rate."
}

// CoerceNumber parses free-form numeric text. Unparseable text yields 0 and
// negative values clamp to 0, so the result is always a usable input value.
func CoerceNumber(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return clampNonNegative(v)
}

// ParseMonthMultipliers parses a comma-separated triple such as
// "0.19,0.60,0.86". Unlike calculation input, a malformed settings value is
// reported so the caller can fall back to the defaults.
func ParseMonthMultipliers(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != len(defaultMonthMultipliers) {
		return [3]float64{}, errors.Errorf("expected %d multipliers, got %d", len(defaultMonthMultipliers), len(parts))
	}

	var multipliers [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return [3]float64{}, errors.Wrapf(err, "invalid multiplier %q", part)
		}
		if v < 0 || v > 1 {
			return [3]float64{}, errors.Errorf("multiplier %v out of range [0,1]", v)
		}
		multipliers[i] = v
	}

	return multipliers, nil
}

// clampNonNegative clamps negative values to zero. Non-finite values degrade
// to zero like any other malformed input.
func clampNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// clampFraction clamps a multiplier into [0,1]
func clampFraction(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampRampStage clamps the ramp stage into the valid {1,2,3} range
func clampRampStage(stage int) int {
	if stage < constants.RampStageMin {
		return constants.RampStageMin
	}
	if stage > constants.RampStageMax {
		return constants.RampStageMax
	}
	return stage
}
