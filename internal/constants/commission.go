package constants

// Ramp Stages
const (
	RampStageMin = 1
	RampStageMax = 3
)

// Environment variable names for commission settings
const (
	CommissionAtQuotaEnv = "COMMISSION_AT_QUOTA"
	MonthMultipliersEnv  = "MONTH_MULTIPLIERS"
)
