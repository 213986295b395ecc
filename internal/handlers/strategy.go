package handlers

import (
	"errors"
	"net/http"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/strategy"
)

// StrategyHandler serves the strategy catalog and calculator API.
type StrategyHandler struct {
	logger *common.Logger
}

// NewStrategyHandler creates a new strategy handler.
func NewStrategyHandler(logger *common.Logger) *StrategyHandler {
	return &StrategyHandler{logger: logger}
}

// HandleList handles GET /api/strategies.
func (h *StrategyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"strategies": strategy.All(),
	})
}

// HandleCalculate handles POST /api/strategy with a JSON body of
// {risk_tolerance, amount, years}.
func (h *StrategyHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req strategy.Request
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := strategy.Calculate(req)
	switch {
	case errors.Is(err, strategy.ErrInvalidRequest), errors.Is(err, strategy.ErrUnknownRisk):
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		common.RequestLogger(r.Context(), h.logger).Error().Err(err).Msg("Strategy calculation failed")
		WriteError(w, http.StatusInternalServerError, "Failed to calculate strategy")
		return
	}

	common.RequestLogger(r.Context(), h.logger).Debug().
		Str("risk", string(plan.RiskTolerance)).
		Int("years", plan.Years).
		Msg("Strategy calculated")

	WriteJSON(w, http.StatusOK, plan)
}
