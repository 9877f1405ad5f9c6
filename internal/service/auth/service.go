package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evomind/evomind-api/internal/domain"
	"github.com/evomind/evomind-api/internal/platform/logger"
)

// Fixed messages shown to users after each flow.
const (
	MessageSMSLogin      = "欢迎来到EvoMind（进化意志）"
	MessagePasswordLogin = "密码登录成功"
	MessageWechatLogin   = "微信登录成功，欢迎"
	MessageSMSSent       = "验证码已发送（演示环境固定123456）"

	smsBizPrefix = "BIZ"
)

// LoginResult is returned by every login flow.
type LoginResult struct {
	UserID       string `json:"userId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Message      string `json:"message"`
}

// SMSReceipt acknowledges a verification code request.
type SMSReceipt struct {
	Phone   string `json:"phone"`
	BizID   string `json:"bizId"`
	Message string `json:"message"`
}

// Service implements the demo login flows. Credentials are not checked:
// any well-formed request logs in.
type Service struct {
	issuer TokenIssuer
	bizSeq *domain.Sequence
	logger *slog.Logger
}

// NewService creates an auth Service.
func NewService(issuer TokenIssuer, bizSeq *domain.Sequence, log *slog.Logger) (*Service, error) {
	if issuer == nil {
		return nil, domain.NewValidationError("issuer", "cannot be nil", domain.ErrValidation)
	}
	if bizSeq == nil {
		return nil, domain.NewValidationError("bizSeq", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		issuer: issuer,
		bizSeq: bizSeq,
		logger: log.With(slog.String("component", "auth_service")),
	}, nil
}

// SendSMS pretends to dispatch a one-time code to phone.
func (s *Service) SendSMS(ctx context.Context, phone, purpose string) SMSReceipt {
	receipt := SMSReceipt{
		Phone:   phone,
		BizID:   s.bizSeq.NextWithPrefix(smsBizPrefix),
		Message: MessageSMSSent,
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("sms code dispatched",
		slog.String("biz_id", receipt.BizID),
		slog.String("purpose", purpose))
	return receipt
}

// LoginWithSMS logs in with a phone number and one-time code.
func (s *Service) LoginWithSMS(ctx context.Context, phone, otp string) (LoginResult, error) {
	return s.login(ctx, "sms", phone, UserIDFromPhone, MessageSMSLogin)
}

// LoginWithPassword logs in with a phone number and password.
func (s *Service) LoginWithPassword(ctx context.Context, phone, password string) (LoginResult, error) {
	return s.login(ctx, "password", phone, UserIDFromPhone, MessagePasswordLogin)
}

// LoginWithWechat logs in with a WeChat openid.
func (s *Service) LoginWithWechat(ctx context.Context, openid, nickname string) (LoginResult, error) {
	return s.login(ctx, "wechat", openid, UserIDFromOpenID, MessageWechatLogin+nickname)
}

func (s *Service) login(
	ctx context.Context,
	method, identity string,
	deriveID func(string) string,
	message string,
) (LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(identity) == "" {
		return LoginResult{}, ErrMissingIdentity
	}

	userID := deriveID(identity)
	tokens, err := s.issuer.Issue(ctx, userID)
	if err != nil {
		log.Error("failed to issue tokens",
			slog.String("method", method),
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return LoginResult{}, fmt.Errorf("%s login: %w", method, err)
	}

	log.Info("user logged in",
		slog.String("method", method),
		slog.String("user_id", userID))
	return LoginResult{
		UserID:       userID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Message:      message,
	}, nil
}
