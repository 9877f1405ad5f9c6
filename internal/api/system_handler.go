package api

import (
	"log/slog"
	"net/http"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/evomind/evomind-api/internal/store"
)

// ServiceName identifies this API in health responses.
const ServiceName = "evomind-api"

// Onboarding constants.
const (
	OnboardingSteps          = 5
	OnboardingReward         = "完成后赠送7天基础体验套餐"
	MessageOnboardingGranted = "新手引导已完成，7天体验权益已发放"
)

// implementedCapabilities and pendingCapabilities back the readiness report.
var (
	implementedCapabilities = []string{
		"认证演示接口", "信息源导入演示", "认知卡片/脑图演示",
		"讨论接口演示", "订单与退款工单演示", "隐私导出/注销受理演示",
	}
	pendingCapabilities = []string{
		"MySQL/Redis持久化", "真实OCR/语音/AIGC SDK", "微信支付/支付宝真实验签和清结算",
		"完整安卓页面和本地数据库", "上架合规材料",
	}
)

// SystemHandler serves health, readiness and onboarding endpoints.
type SystemHandler struct {
	onboarding store.OnboardingStore
	logger     *slog.Logger
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(onboarding store.OnboardingStore, logger *slog.Logger) *SystemHandler {
	if onboarding == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("onboarding store cannot be nil for SystemHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemHandler{
		onboarding: onboarding,
		logger:     logger.With(slog.String("component", "system_handler")),
	}
}

// Health handles GET /health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondOK(w, r, HealthResponse{Status: "UP", Service: ServiceName})
}

// Readiness handles GET /system/readiness.
func (h *SystemHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	shared.RespondOK(w, r, ReadinessResponse{
		Implemented: append([]string(nil), implementedCapabilities...),
		Pending:     append([]string(nil), pendingCapabilities...),
	})
}

// OnboardingState handles GET /onboarding/state?userId=.
func (h *SystemHandler) OnboardingState(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryParam(w, r, "userId")
	if !ok {
		return
	}

	completed := h.onboarding.IsOnboardingDone(r.Context(), userID)
	finished := 0
	if completed {
		finished = OnboardingSteps
	}

	shared.RespondOK(w, r, OnboardingStateResponse{
		Completed: completed,
		Total:     OnboardingSteps,
		Finished:  finished,
		Reward:    OnboardingReward,
	})
}

// CompleteOnboarding handles POST /onboarding/complete?userId=.
func (h *SystemHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryParam(w, r, "userId")
	if !ok {
		return
	}

	h.onboarding.CompleteOnboarding(r.Context(), userID)
	logger.FromContextOrDefault(r.Context(), h.logger).Info("onboarding reward granted",
		slog.String("user_id", userID))

	shared.RespondOK(w, r, MessageResponse{Message: MessageOnboardingGranted})
}
