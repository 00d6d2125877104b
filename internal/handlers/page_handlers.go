package handlers

import (
	"fmt"
	"html/template"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/helpers"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/interfaces"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/services"
)

// PageHandler serves the calculator UI
type PageHandler struct {
	common            *CommonServices
	commissionService interfaces.CommissionService
	config            services.CommissionConfig
	tmpl              *template.Template
}

// NewPageHandler creates a new page handler
func NewPageHandler(
	common *CommonServices,
	commissionService interfaces.CommissionService,
	config services.CommissionConfig,
) *PageHandler {
	return &PageHandler{
		common:            common,
		commissionService: commissionService,
		config:            config,
		tmpl:              template.Must(template.New("calculator").Parse(calculatorPageHTML)),
	}
}

type rampStageOption struct {
	Stage int
	Label string
}

type tierRow struct {
	Attainment string
	Multiplier string
}

type calculatorPageData struct {
	CommissionAtQuota string
	RampStages        []rampStageOption
	Tiers             []tierRow
}

// CalculatorPage renders the commission calculator form
// @Summary Commission calculator page
// @Description Serves the interactive calculator form. Results recompute on every input against the calculate endpoint.
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *PageHandler) CalculatorPage(c *gin.Context) {
	data := calculatorPageData{
		CommissionAtQuota: fmt.Sprintf("%.2f", h.config.CommissionAtQuota),
		RampStages:        h.rampStageOptions(),
		Tiers:             h.tierRows(),
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.Execute(c.Writer, data); err != nil {
		h.common.GetLogger().Error("Failed to render calculator page", zap.Error(err))
	}
}

// rampStageOptions labels the three ramp months with their quota percentage
func (h *PageHandler) rampStageOptions() []rampStageOption {
	options := make([]rampStageOption, 0, len(h.config.MonthMultipliers))
	for i, multiplier := range h.config.MonthMultipliers {
		stage := i + 1
		percent := int(math.Round(multiplier * 100))

		label := fmt.Sprintf("Month %d (%d%% ramp)", stage, percent)
		if stage == len(h.config.MonthMultipliers) {
			label = fmt.Sprintf("Month %d+ (%d%% ramp)", stage, percent)
		}

		options = append(options, rampStageOption{Stage: stage, Label: label})
	}
	return options
}

// tierRows formats the payout schedule for the explainer table
func (h *PageHandler) tierRows() []tierRow {
	schedule := h.commissionService.TierSchedule()

	rows := make([]tierRow, 0, len(schedule))
	for _, tier := range schedule {
		rows = append(rows, tierRow{
			Attainment: fmt.Sprintf("%s and above", helpers.FormatPercent(tier.Threshold)),
			Multiplier: fmt.Sprintf("%.2fx", tier.Multiplier),
		})
	}
	return rows
}

const calculatorPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>SDR Commission Calculator</title>
<style>
  :root { --accent: #2563eb; --border: #d1d5db; --muted: #6b7280; }
  * { box-sizing: border-box; }
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 0; background: #f9fafb; color: #111827; }
  main { max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
  h1 { font-size: 1.5rem; }
  .card { background: #fff; border: 1px solid var(--border); border-radius: 8px; padding: 1.25rem; margin-bottom: 1rem; }
  label { display: block; font-size: 0.875rem; font-weight: 600; margin-bottom: 0.25rem; }
  input, select { width: 100%; padding: 0.5rem; border: 1px solid var(--border); border-radius: 6px; font-size: 1rem; }
  .field { margin-bottom: 1rem; }
  .summary dt { color: var(--muted); font-size: 0.8rem; text-transform: uppercase; }
  .summary dd { margin: 0 0 0.75rem; font-size: 1.125rem; font-weight: 600; }
  .summary .payout dd { font-size: 1.5rem; color: var(--accent); }
  .explanation { color: var(--muted); font-size: 0.875rem; }
  table { width: 100%; border-collapse: collapse; font-size: 0.875rem; }
  th, td { text-align: left; padding: 0.4rem 0; border-bottom: 1px solid var(--border); }
</style>
</head>
<body>
<main>
  <h1>SDR Commission Calculator</h1>

  <form id="calculator-form" class="card" autocomplete="off">
    <div class="field">
      <label for="ramp-stage">Ramp stage</label>
      <select id="ramp-stage" name="ramp_stage">
        {{range .RampStages}}<option value="{{.Stage}}">{{.Label}}</option>
        {{end}}</select>
    </div>
    <div class="field">
      <label for="working-days">Working days this month</label>
      <input id="working-days" name="working_days" inputmode="decimal" value="20">
    </div>
    <div class="field">
      <label for="actual-qdcs">Actual QDCs</label>
      <input id="actual-qdcs" name="actual_qdcs" inputmode="decimal" value="0">
    </div>
    <div class="field">
      <label for="commission-at-quota">Commission at quota (USD)</label>
      <input id="commission-at-quota" name="commission_at_quota" inputmode="decimal" value="{{.CommissionAtQuota}}">
    </div>
  </form>

  <section class="card summary">
    <dl>
      <div><dt>Quota QDCs</dt><dd id="quota-qdcs">&ndash;</dd></div>
      <div><dt>Actual QDCs</dt><dd id="summary-actual-qdcs">&ndash;</dd></div>
      <div><dt>Quota attainment</dt><dd id="quota-attainment">&ndash;</dd></div>
      <div><dt>Tier multiplier</dt><dd id="tier-multiplier">&ndash;</dd></div>
      <div class="payout"><dt>Commission</dt><dd id="commission">&ndash;</dd></div>
    </dl>
    <p class="explanation" id="explanation"></p>
  </section>

  <section class="card">
    <h2>Payout tiers</h2>
    <table>
      <thead><tr><th>Attainment</th><th>Multiplier</th></tr></thead>
      <tbody>
        {{range .Tiers}}<tr><td>{{.Attainment}}</td><td>{{.Multiplier}}</td></tr>
        {{end}}</tbody>
    </table>
  </section>
</main>

<script>
(function () {
  var fields = {
    rampStage: document.getElementById('ramp-stage'),
    workingDays: document.getElementById('working-days'),
    actualQDCs: document.getElementById('actual-qdcs'),
    commissionAtQuota: document.getElementById('commission-at-quota')
  };
  var out = {
    quotaQDCs: document.getElementById('quota-qdcs'),
    actualQDCs: document.getElementById('summary-actual-qdcs'),
    attainment: document.getElementById('quota-attainment'),
    tierMultiplier: document.getElementById('tier-multiplier'),
    commission: document.getElementById('commission'),
    explanation: document.getElementById('explanation')
  };
  var timer = null;

  function recompute() {
    var body = {
      ramp_stage: Number(fields.rampStage.value),
      working_days: fields.workingDays.value,
      actual_qdcs: fields.actualQDCs.value,
      commission_at_quota: fields.commissionAtQuota.value
    };

    fetch('/api/v1/commission/calculate', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(body)
    })
      .then(function (res) { return res.json(); })
      .then(function (result) {
        out.quotaQDCs.textContent = result.quota_qdcs;
        out.actualQDCs.textContent = result.actual_qdcs;
        out.attainment.textContent = result.attainment_display;
        out.tierMultiplier.textContent = result.tier_multiplier.toFixed(2) + 'x';
        out.commission.textContent = result.commission_display;
        out.explanation.textContent = result.explanation;
      })
      .catch(function () { /* keep the last good summary while typing */ });
  }

  function schedule() {
    clearTimeout(timer);
    timer = setTimeout(recompute, 150);
  }

  Object.keys(fields).forEach(function (key) {
    fields[key].addEventListener('input', schedule);
    fields[key].addEventListener('change', schedule);
  });

  recompute();
})();
</script>
</body>
</html>
`
