package api

import (
	"log/slog"
	"net/http"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/billing"
	"github.com/evomind/evomind-api/internal/domain"
)

// SubscriptionHandler serves the plan catalogue and cost estimates.
type SubscriptionHandler struct {
	logger *slog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(logger *slog.Logger) *SubscriptionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubscriptionHandler{
		logger: logger.With(slog.String("component", "subscription_handler")),
	}
}

// Plans handles GET /subscription/plans.
func (h *SubscriptionHandler) Plans(w http.ResponseWriter, r *http.Request) {
	shared.RespondOK(w, r, domain.Plans())
}

// CostEstimate handles POST /subscription/cost-estimate.
func (h *SubscriptionHandler) CostEstimate(w http.ResponseWriter, r *http.Request) {
	var usage billing.Usage
	if !decodeAndValidate(w, r, &usage) {
		return
	}

	estimate, err := billing.Estimate(usage)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to estimate cost")
		return
	}
	shared.RespondOK(w, r, estimate)
}
