package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/services"
)

func newPageHandlerForTest() *PageHandler {
	gin.SetMode(gin.TestMode)

	calculator := services.NewCommissionCalculator()
	return NewPageHandler(
		CreateMockCommonServices(calculator),
		calculator,
		services.DefaultCommissionConfig(),
	)
}

func getCalculatorPage(t *testing.T, handler *PageHandler) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.GET("/", handler.CalculatorPage)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	return w
}

func TestPageHandler_CalculatorPage(t *testing.T) {
	handler := newPageHandlerForTest()

	w := getCalculatorPage(t, handler)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()

	// All four form fields are present
	assert.Contains(t, body, `id="ramp-stage"`)
	assert.Contains(t, body, `id="working-days"`)
	assert.Contains(t, body, `id="actual-qdcs"`)
	assert.Contains(t, body, `id="commission-at-quota"`)

	// The summary panel fields are present
	assert.Contains(t, body, `id="quota-qdcs"`)
	assert.Contains(t, body, `id="quota-attainment"`)
	assert.Contains(t, body, `id="tier-multiplier"`)
	assert.Contains(t, body, `id="commission"`)

	// Recompute posts against the calculate endpoint
	assert.Contains(t, body, "/api/v1/commission/calculate")
}

func TestPageHandler_CalculatorPage_InitialValues(t *testing.T) {
	handler := newPageHandlerForTest()

	w := getCalculatorPage(t, handler)
	body := w.Body.String()

	// Commission at quota is prefilled from the server settings
	assert.Contains(t, body, `value="1250.00"`)

	// The ramp selector offers exactly the three ramp months
	assert.Contains(t, body, "Month 1 (19% ramp)")
	assert.Contains(t, body, "Month 2 (60% ramp)")
	assert.Contains(t, body, "Month 3+ (86% ramp)")
}

func TestPageHandler_CalculatorPage_TierTable(t *testing.T) {
	handler := newPageHandlerForTest()

	w := getCalculatorPage(t, handler)
	body := w.Body.String()

	assert.Contains(t, body, "110.0% and above")
	assert.Contains(t, body, "1.15x")
	assert.Contains(t, body, "100.0% and above")
	assert.Contains(t, body, "50.0% and above")
	assert.Contains(t, body, "0.75x")
	assert.Contains(t, body, "0.50x")
}
