package api

import (
	"log/slog"
	"net/http"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/generation"
	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/go-chi/chi/v5"
)

// CardHandler serves cognition cards and their mindmaps.
type CardHandler struct {
	synthesiser generation.Synthesiser
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(synthesiser generation.Synthesiser, logger *slog.Logger) *CardHandler {
	if synthesiser == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("synthesiser cannot be nil for CardHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		synthesiser: synthesiser,
		logger:      logger.With(slog.String("component", "card_handler")),
	}
}

// Feed handles GET /cards/feed?userId=.
func (h *CardHandler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryParam(w, r, "userId")
	if !ok {
		return
	}

	cards, err := h.synthesiser.BuildCards(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to build card feed")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("card feed built",
		slog.String("user_id", userID),
		slog.Int("cards", len(cards)))
	shared.RespondOK(w, r, cards)
}

// Mindmap handles GET /cards/{id}/mindmap.
func (h *CardHandler) Mindmap(w http.ResponseWriter, r *http.Request) {
	mindmap, err := h.synthesiser.BuildMindmap(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to build mindmap")
		return
	}
	shared.RespondOK(w, r, mindmap)
}

// Drilldown handles GET /cards/{id}/drilldown?nodeId=.
func (h *CardHandler) Drilldown(w http.ResponseWriter, r *http.Request) {
	nodeID, ok := queryParam(w, r, "nodeId")
	if !ok {
		return
	}

	drilldown, err := h.synthesiser.Drilldown(r.Context(), chi.URLParam(r, "id"), nodeID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load source paragraph")
		return
	}
	shared.RespondOK(w, r, drilldown)
}
