package api

import (
	"log/slog"
	"net/http"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/evomind/evomind-api/internal/platform/payment"
)

// callbackMessages holds the success and failure message for each channel.
var callbackMessages = map[payment.Channel][2]string{
	payment.ChannelWechat: {"微信回调验签通过（演示）", "微信回调验签失败"},
	payment.ChannelAlipay: {"支付宝回调验签通过（演示）", "支付宝回调验签失败"},
}

// PaymentHandler receives payment gateway callbacks.
type PaymentHandler struct {
	verifier payment.Verifier
	logger   *slog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(verifier payment.Verifier, logger *slog.Logger) *PaymentHandler {
	if verifier == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("verifier cannot be nil for PaymentHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentHandler{
		verifier: verifier,
		logger:   logger.With(slog.String("component", "payment_handler")),
	}
}

// WechatCallback handles POST /pay/wechat/callback.
func (h *PaymentHandler) WechatCallback(w http.ResponseWriter, r *http.Request) {
	h.handleCallback(w, r, payment.ChannelWechat)
}

// AlipayCallback handles POST /pay/alipay/callback.
func (h *PaymentHandler) AlipayCallback(w http.ResponseWriter, r *http.Request) {
	h.handleCallback(w, r, payment.ChannelAlipay)
}

// handleCallback verifies the callback and echoes it. A failed
// verification is reported in the payload, not as an HTTP error.
func (h *PaymentHandler) handleCallback(w http.ResponseWriter, r *http.Request, channel payment.Channel) {
	var cb payment.Callback
	if !decodeAndValidate(w, r, &cb) {
		return
	}

	messages := callbackMessages[channel]
	resp := PaymentCallbackResponse{
		OrderNo: cb.OrderNo,
		TradeNo: cb.TradeNo,
		Status:  cb.Status,
		Message: messages[0],
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	if !payment.Verify(r.Context(), h.verifier, channel, cb) {
		resp.Status = payment.StatusFailed
		resp.Message = messages[1]
		log.Warn("payment callback rejected",
			slog.String("channel", string(channel)),
			slog.String("order_no", cb.OrderNo))
	} else {
		log.Info("payment callback verified",
			slog.String("channel", string(channel)),
			slog.String("order_no", cb.OrderNo))
	}

	shared.RespondOK(w, r, resp)
}
