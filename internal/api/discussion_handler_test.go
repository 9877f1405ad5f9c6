package api

import (
	"net/http"
	"testing"

	"github.com/evomind/evomind-api/internal/domain"
	"github.com/evomind/evomind-api/internal/generation"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newDiscussionRouter(h *DiscussionHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/discussion/daily-question/generate", h.GenerateDailyQuestion)
	r.Post("/discussion/{id}/reply", h.Reply)
	r.Post("/discussion/{id}/finalize", h.Finalize)
	return r
}

func TestDiscussionHandler_Flow(t *testing.T) {
	router := newDiscussionRouter(NewDiscussionHandler(generation.NewPlaceholderSynthesiser(), nil))

	question := decodeEnvelope[domain.DailyQuestion](t,
		doJSON(t, router, http.MethodPost, "/discussion/daily-question/generate", nil))
	assert.NotEmpty(t, question.QuestionID)
	assert.Equal(t, generation.DailyQuestionText, question.Question)

	reply := decodeEnvelope[domain.DiscussionReply](t, doJSON(t, router, http.MethodPost, "/discussion/d1/reply",
		DiscussionReplyRequest{UserID: "u1", Answer: "少刷短视频"}))
	assert.Equal(t, "d1", reply.DiscussionID)
	assert.Equal(t, "你提到了少刷短视频，请给出一个明天就能执行的具体动作。", reply.FollowUpQuestion)

	summary := decodeEnvelope[domain.DiscussionSummary](t, doJSON(t, router, http.MethodPost, "/discussion/d1/finalize",
		DiscussionFinalizeRequest{UserID: "u1", FinalAnswer: "每天复盘"}))
	assert.Equal(t, domain.DiscussionSummary{
		DiscussionID: "d1",
		Summary:      generation.DiscussionSummary,
		NextQuestion: generation.DiscussionNextPrompt,
		Tag:          domain.AIGeneratedTag,
	}, summary)
}

func TestDiscussionHandler_Validation(t *testing.T) {
	router := newDiscussionRouter(NewDiscussionHandler(generation.NewPlaceholderSynthesiser(), nil))

	resp := decodeError(t, doJSON(t, router, http.MethodPost, "/discussion/d1/reply",
		map[string]string{"userId": "u1"}), http.StatusBadRequest)
	assert.Equal(t, "Invalid answer: required field", resp.Error)

	resp = decodeError(t, doJSON(t, router, http.MethodPost, "/discussion/d1/finalize",
		map[string]string{"finalAnswer": "x"}), http.StatusBadRequest)
	assert.Equal(t, "Invalid userId: required field", resp.Error)
}

func TestDiscussionHandler_SynthesisFailure(t *testing.T) {
	router := newDiscussionRouter(NewDiscussionHandler(failingSynthesiser{err: generation.ErrGenerationFailed}, nil))

	resp := decodeError(t, doJSON(t, router, http.MethodPost, "/discussion/d1/reply",
		DiscussionReplyRequest{UserID: "u1", Answer: "a"}), http.StatusInternalServerError)
	assert.Equal(t, "Failed to continue discussion", resp.Error)
}
