package api

import (
	"log/slog"
	"net/http"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/generation"
	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/go-chi/chi/v5"
)

// DiscussionHandler drives the Socratic discussion flow. Discussions are
// stateless: every step is synthesised from the request alone.
type DiscussionHandler struct {
	synthesiser generation.Synthesiser
	logger      *slog.Logger
}

// NewDiscussionHandler creates a new DiscussionHandler.
func NewDiscussionHandler(synthesiser generation.Synthesiser, logger *slog.Logger) *DiscussionHandler {
	if synthesiser == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("synthesiser cannot be nil for DiscussionHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscussionHandler{
		synthesiser: synthesiser,
		logger:      logger.With(slog.String("component", "discussion_handler")),
	}
}

// GenerateDailyQuestion handles POST /discussion/daily-question/generate.
func (h *DiscussionHandler) GenerateDailyQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.synthesiser.DailyQuestion(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate daily question")
		return
	}
	shared.RespondOK(w, r, question)
}

// Reply handles POST /discussion/{id}/reply.
func (h *DiscussionHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req DiscussionReplyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	discussionID := chi.URLParam(r, "id")
	reply, err := h.synthesiser.FollowUp(r.Context(), discussionID, req.Answer)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to continue discussion")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("discussion reply",
		slog.String("user_id", req.UserID),
		slog.String("discussion_id", discussionID))
	shared.RespondOK(w, r, reply)
}

// Finalize handles POST /discussion/{id}/finalize.
func (h *DiscussionHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	var req DiscussionFinalizeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	summary, err := h.synthesiser.FinalizeDiscussion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to finalize discussion")
		return
	}
	shared.RespondOK(w, r, summary)
}
