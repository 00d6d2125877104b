// Package interfaces contains service interfaces used throughout the
// application. This pattern enables loose coupling and easier testing
// through mocks.
package interfaces

import (
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/services"
)

// CommissionService handles commission calculations for SDR payouts
type CommissionService interface {
	// Calculate computes one month of commission from settings and performance
	Calculate(config services.CommissionConfig, input services.PerformanceInput) *services.CommissionResult

	// TierSchedule returns the attainment payout schedule, highest tier first
	TierSchedule() []services.AttainmentTier

	// FormatCommissionExplanation renders a human-readable summary of a result
	FormatCommissionExplanation(result *services.CommissionResult) string
}
