package api

import "github.com/evomind/evomind-api/internal/domain"

// Auth requests

// SMSSendRequest asks for a one-time code.
type SMSSendRequest struct {
	Phone   string `json:"phone"   validate:"notblank"`
	Purpose string `json:"purpose"`
}

// SMSLoginRequest logs in with a one-time code.
type SMSLoginRequest struct {
	Phone string `json:"phone" validate:"notblank"`
	OTP   string `json:"otp"   validate:"notblank"`
}

// PasswordLoginRequest logs in with a password.
type PasswordLoginRequest struct {
	Phone    string `json:"phone"    validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// WechatLoginRequest logs in with a WeChat identity.
type WechatLoginRequest struct {
	OpenID   string `json:"openid"   validate:"notblank"`
	Nickname string `json:"nickname" validate:"notblank"`
}

// PasswordResetRequest resets a password with a one-time code.
type PasswordResetRequest struct {
	Phone       string `json:"phone"       validate:"notblank"`
	OTP         string `json:"otp"         validate:"notblank"`
	NewPassword string `json:"newPassword" validate:"notblank"`
}

// UserRequest carries only the acting user. Used by logout and privacy requests.
type UserRequest struct {
	UserID string `json:"userId" validate:"notblank"`
}

// Source requests

// OCRRecognizeRequest submits a screenshot for recognition.
type OCRRecognizeRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"notblank"`
	Platform    string `json:"platform"    validate:"notblank"`
}

// SourceImportRequest imports a batch of sources from one platform.
type SourceImportRequest struct {
	UserID   string                   `json:"userId"   validate:"notblank"`
	Platform string                   `json:"platform" validate:"notblank"`
	Items    []domain.SourceCandidate `json:"items"    validate:"required,min=1,dive"`
}

// ManualSourceRequest adds a single source.
type ManualSourceRequest struct {
	UserID   string `json:"userId"   validate:"notblank"`
	Platform string `json:"platform" validate:"notblank"`
	Nickname string `json:"nickname" validate:"notblank"`
	Homepage string `json:"homepage" validate:"notblank"`
}

// Discussion requests

// DiscussionReplyRequest answers the current question.
type DiscussionReplyRequest struct {
	UserID string `json:"userId" validate:"notblank"`
	Answer string `json:"answer" validate:"notblank"`
}

// DiscussionFinalizeRequest closes a discussion.
type DiscussionFinalizeRequest struct {
	UserID      string `json:"userId"      validate:"notblank"`
	FinalAnswer string `json:"finalAnswer" validate:"notblank"`
}

// Challenge requests

// TaskStatusRequest sets the status of the user's challenge task.
type TaskStatusRequest struct {
	UserID string `json:"userId" validate:"notblank"`
	Status string `json:"status" validate:"notblank"`
}

// ArtifactRequest submits the work produced for a challenge.
type ArtifactRequest struct {
	UserID  string `json:"userId"  validate:"notblank"`
	Type    string `json:"type"    validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
}

// Order requests

// RefundRequest opens a refund ticket.
type RefundRequest struct {
	UserID  string `json:"userId"  validate:"notblank"`
	OrderNo string `json:"orderNo" validate:"notblank"`
	Reason  string `json:"reason"  validate:"notblank"`
}

// Responses

// StatusMessageResponse acknowledges a request that has no other result.
type StatusMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MessageResponse carries a single user-facing message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ReadinessResponse lists which capabilities are real and which are pending.
type ReadinessResponse struct {
	Implemented []string `json:"implemented"`
	Pending     []string `json:"pending"`
}

// OnboardingStateResponse reports onboarding progress.
type OnboardingStateResponse struct {
	Completed bool   `json:"completed"`
	Total     int    `json:"total"`
	Finished  int    `json:"finished"`
	Reward    string `json:"reward"`
}

// ArtifactResponse confirms an artifact upload.
type ArtifactResponse struct {
	TaskID string `json:"taskId"`
	Result string `json:"result"`
	Type   string `json:"type"`
}

// RefundResponse identifies the opened refund ticket.
type RefundResponse struct {
	TicketNo string `json:"ticketNo"`
	Status   string `json:"status"`
}

// PaymentCallbackResponse reports the outcome of a gateway callback.
type PaymentCallbackResponse struct {
	OrderNo string `json:"orderNo"`
	TradeNo string `json:"tradeNo"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
