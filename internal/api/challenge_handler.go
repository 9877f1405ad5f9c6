package api

import (
	"log/slog"
	"net/http"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/evomind/evomind-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// ArtifactArchived confirms an artifact upload.
const ArtifactArchived = "作品已上传并归档"

// ChallengeHandler serves each user's current challenge task.
type ChallengeHandler struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(tasks store.TaskStore, logger *slog.Logger) *ChallengeHandler {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("task store cannot be nil for ChallengeHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChallengeHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "challenge_handler")),
	}
}

// Current handles GET /challenges/current?userId=.
func (h *ChallengeHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryParam(w, r, "userId")
	if !ok {
		return
	}
	shared.RespondOK(w, r, h.tasks.GetOrInitTask(r.Context(), userID))
}

// UpdateStatus handles POST /challenges/{id}/status.
// Each user holds a single task, so the path ID is informational only.
func (h *ChallengeHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req TaskStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task := h.tasks.UpdateTaskStatus(r.Context(), req.UserID, req.Status)
	if pathID := chi.URLParam(r, "id"); pathID != task.ID {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("status update path id differs from current task",
			slog.String("path_id", pathID),
			slog.String("task_id", task.ID))
	}
	shared.RespondOK(w, r, task)
}

// SubmitArtifact handles POST /challenges/{id}/artifact. Content is
// acknowledged but not stored.
func (h *ChallengeHandler) SubmitArtifact(w http.ResponseWriter, r *http.Request) {
	var req ArtifactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	taskID := chi.URLParam(r, "id")
	logger.FromContextOrDefault(r.Context(), h.logger).Info("artifact archived",
		slog.String("user_id", req.UserID),
		slog.String("task_id", taskID),
		slog.String("type", req.Type),
		slog.Int("content_bytes", len(req.Content)))

	shared.RespondOK(w, r, ArtifactResponse{TaskID: taskID, Result: ArtifactArchived, Type: req.Type})
}
