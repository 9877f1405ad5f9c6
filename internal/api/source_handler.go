package api

import (
	"log/slog"
	"net/http"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/evomind/evomind-api/internal/platform/ocr"
	"github.com/evomind/evomind-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// Results of DELETE /sources/{id}. A missing source is not an error.
const (
	MessageSourceDeleted  = "删除成功"
	MessageSourceNotFound = "未找到信息源"
)

// SourceHandler manages a user's information sources.
type SourceHandler struct {
	sources    store.SourceStore
	recognizer ocr.Recognizer
	logger     *slog.Logger
}

// NewSourceHandler creates a new SourceHandler.
func NewSourceHandler(sources store.SourceStore, recognizer ocr.Recognizer, logger *slog.Logger) *SourceHandler {
	if sources == nil || recognizer == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("source store and recognizer cannot be nil for SourceHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceHandler{
		sources:    sources,
		recognizer: recognizer,
		logger:     logger.With(slog.String("component", "source_handler")),
	}
}

// Recognize handles POST /sources/ocr/recognize.
func (h *SourceHandler) Recognize(w http.ResponseWriter, r *http.Request) {
	var req OCRRecognizeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.recognizer.Recognize(r.Context(), req.Platform, req.ImageBase64)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to recognize image")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("image recognized",
		slog.String("platform", req.Platform),
		slog.Int("candidates", len(result.Candidates)))
	shared.RespondOK(w, r, result)
}

// Import handles POST /sources/import.
func (h *SourceHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req SourceImportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	shared.RespondOK(w, r, h.sources.ImportSources(r.Context(), req.UserID, req.Platform, req.Items))
}

// AddManual handles POST /sources/manual.
func (h *SourceHandler) AddManual(w http.ResponseWriter, r *http.Request) {
	var req ManualSourceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	shared.RespondOK(w, r, h.sources.AddSource(r.Context(), req.UserID, req.Platform, req.Nickname, req.Homepage))
}

// List handles GET /sources?userId=.
func (h *SourceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryParam(w, r, "userId")
	if !ok {
		return
	}
	shared.RespondOK(w, r, h.sources.GetSources(r.Context(), userID))
}

// Delete handles DELETE /sources/{id}?userId=.
func (h *SourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryParam(w, r, "userId")
	if !ok {
		return
	}

	if h.sources.RemoveSource(r.Context(), userID, chi.URLParam(r, "id")) {
		shared.RespondOK(w, r, MessageSourceDeleted)
		return
	}
	shared.RespondOK(w, r, MessageSourceNotFound)
}
