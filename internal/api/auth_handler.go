package api

import (
	"log/slog"
	"net/http"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/evomind/evomind-api/internal/service/auth"
)

// Fixed acknowledgements for the auth endpoints that do nothing else.
const (
	MessagePasswordReset = "密码重置成功"
	MessageLoggedOut     = "已退出登录"
	statusOK             = "ok"
)

// AuthHandler handles authentication-related API requests.
// Credentials are never checked; the flows exist so clients can be built
// against the real request and response shapes.
type AuthHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService *auth.Service, logger *slog.Logger) *AuthHandler {
	if authService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("authService cannot be nil for AuthHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		authService: authService,
		logger:      logger.With(slog.String("component", "auth_handler")),
	}
}

// SendSMS handles POST /auth/sms/send.
func (h *AuthHandler) SendSMS(w http.ResponseWriter, r *http.Request) {
	var req SMSSendRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	shared.RespondOK(w, r, h.authService.SendSMS(r.Context(), req.Phone, req.Purpose))
}

// SMSLogin handles POST /auth/sms/login.
func (h *AuthHandler) SMSLogin(w http.ResponseWriter, r *http.Request) {
	var req SMSLoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	result, err := h.authService.LoginWithSMS(r.Context(), req.Phone, req.OTP)
	h.respondLogin(w, r, result, err)
}

// PasswordLogin handles POST /auth/password/login.
func (h *AuthHandler) PasswordLogin(w http.ResponseWriter, r *http.Request) {
	var req PasswordLoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	result, err := h.authService.LoginWithPassword(r.Context(), req.Phone, req.Password)
	h.respondLogin(w, r, result, err)
}

// WechatLogin handles POST /auth/wechat/login.
func (h *AuthHandler) WechatLogin(w http.ResponseWriter, r *http.Request) {
	var req WechatLoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	result, err := h.authService.LoginWithWechat(r.Context(), req.OpenID, req.Nickname)
	h.respondLogin(w, r, result, err)
}

func (h *AuthHandler) respondLogin(w http.ResponseWriter, r *http.Request, result auth.LoginResult, err error) {
	if err != nil {
		HandleAPIError(w, r, err, "Failed to log in")
		return
	}
	shared.RespondOK(w, r, result)
}

// ResetPassword handles POST /auth/password/reset.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordResetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	logger.FromContextOrDefault(r.Context(), h.logger).Info("password reset accepted")
	shared.RespondOK(w, r, StatusMessageResponse{Status: statusOK, Message: MessagePasswordReset})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	logger.FromContextOrDefault(r.Context(), h.logger).Info("user logged out",
		slog.String("user_id", req.UserID))
	shared.RespondOK(w, r, StatusMessageResponse{Status: statusOK, Message: MessageLoggedOut})
}
