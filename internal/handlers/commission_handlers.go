package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/constants"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/helpers"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/interfaces"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/services"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/types/api/requests"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/types/api/responses"
)

type CommissionHandler struct {
	common            *CommonServices
	commissionService interfaces.CommissionService
	config            services.CommissionConfig
}

// NewCommissionHandler creates a handler with interface dependencies.
// The config carries the server's commission settings; requests may override
// them per calculation.
func NewCommissionHandler(
	common *CommonServices,
	commissionService interfaces.CommissionService,
	config services.CommissionConfig,
) *CommissionHandler {
	return &CommissionHandler{
		common:            common,
		commissionService: commissionService,
		config:            config,
	}
}

// CalculateCommission computes one month of SDR commission
// @Summary Calculate commission
// @Description Computes quota, attainment and payout for one month of SDR performance. Numeric fields are coerced, never rejected: garbage values flow through the math as zero.
// @Tags commission
// @Accept json
// @Produce json
// @Param request body requests.CalculateCommissionRequest true "Performance for the month"
// @Success 200 {object} responses.CommissionResponse
// @Failure 400 {object} ErrorResponse "Malformed JSON body"
// @Router /commission/calculate [post]
func (h *CommissionHandler) CalculateCommission(c *gin.Context) {
	var req requests.CalculateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	config := h.config
	if req.CommissionAtQuota != nil {
		config.CommissionAtQuota = req.CommissionAtQuota.Float64()
	}
	if req.MonthMultipliers != nil {
		config.MonthMultipliers = [3]float64(*req.MonthMultipliers)
	}

	// The ramp selector only offers stages 1 through 3, so anything else
	// snaps into that range before the integer conversion
	stage := req.RampStage.Float64()
	if stage < float64(constants.RampStageMin) {
		stage = float64(constants.RampStageMin)
	}
	if stage > float64(constants.RampStageMax) {
		stage = float64(constants.RampStageMax)
	}

	input := services.PerformanceInput{
		RampStage:   int(stage),
		WorkingDays: req.WorkingDays.Float64(),
		ActualQDCs:  req.ActualQDCs.Float64(),
	}

	result := h.commissionService.Calculate(config, input)

	sendSuccess(c, http.StatusOK, h.buildCommissionResponse(input, result))
}

// GetCommissionConfig returns the active commission settings
// @Summary Get commission settings
// @Description Returns the commission at quota and the ramp-stage month multipliers the calculator is running with
// @Tags commission
// @Accept json
// @Produce json
// @Success 200 {object} responses.CommissionConfigResponse
// @Router /commission/config [get]
func (h *CommissionHandler) GetCommissionConfig(c *gin.Context) {
	sendSuccess(c, http.StatusOK, responses.CommissionConfigResponse{
		CommissionAtQuota: h.config.CommissionAtQuota,
		MonthMultipliers:  h.config.MonthMultipliers,
	})
}

// GetTierSchedule returns the attainment payout schedule
// @Summary Get the payout tier schedule
// @Description Returns the attainment thresholds and their payout multipliers, highest tier first
// @Tags commission
// @Accept json
// @Produce json
// @Success 200 {object} responses.TierScheduleResponse
// @Router /commission/tiers [get]
func (h *CommissionHandler) GetTierSchedule(c *gin.Context) {
	schedule := h.commissionService.TierSchedule()

	tiers := make([]responses.AttainmentTierResponse, 0, len(schedule))
	for _, tier := range schedule {
		tiers = append(tiers, responses.AttainmentTierResponse{
			Threshold:  tier.Threshold,
			Multiplier: tier.Multiplier,
		})
	}

	sendSuccess(c, http.StatusOK, responses.TierScheduleResponse{Tiers: tiers})
}

// buildCommissionResponse attaches display formatting to an engine result
func (h *CommissionHandler) buildCommissionResponse(input services.PerformanceInput, result *services.CommissionResult) responses.CommissionResponse {
	// Mirror the effective actuals the engine computed with, not the raw input
	actualQDCs := input.ActualQDCs
	if v, ok := result.Calculation["actual_qdcs"].(float64); ok {
		actualQDCs = v
	}

	commissionCents := helpers.DollarsToCents(result.Commission)

	return responses.CommissionResponse{
		QuotaQDCs:         result.QuotaQDCs,
		ActualQDCs:        actualQDCs,
		MonthMultiplier:   result.MonthMultiplier,
		QuotaAttainment:   result.QuotaAttainment,
		AttainmentDisplay: helpers.FormatPercent(result.QuotaAttainment),
		TierMultiplier:    result.TierMultiplier,
		Commission:        result.Commission,
		CommissionCents:   commissionCents,
		CommissionDisplay: helpers.FormatUSD(commissionCents),
		Currency:          constants.USDCurrency,
		Explanation:       h.commissionService.FormatCommissionExplanation(result),
		Calculation:       result.Calculation,
	}
}
