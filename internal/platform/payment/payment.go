// Package payment verifies asynchronous callbacks from payment gateways.
package payment

import (
	"context"
	"strings"
)

// Channel identifies a payment gateway.
type Channel string

// Supported payment channels.
const (
	ChannelWechat Channel = "WECHAT"
	ChannelAlipay Channel = "ALIPAY"
)

// StatusFailed replaces the reported status when verification fails.
const StatusFailed = "FAILED"

// Callback is the notification a gateway sends after a payment attempt.
type Callback struct {
	OrderNo string `json:"orderNo" validate:"notblank"`
	TradeNo string `json:"tradeNo"`
	Status  string `json:"status"  validate:"notblank"`
}

// Verifier checks that a callback really came from the gateway.
type Verifier interface {
	VerifyWechat(ctx context.Context, cb Callback) bool
	VerifyAlipay(ctx context.Context, cb Callback) bool
}

// StubVerifier accepts any callback that carries a trade number.
// No signature is checked.
type StubVerifier struct{}

// Ensure StubVerifier implements Verifier
var _ Verifier = StubVerifier{}

// VerifyWechat implements Verifier.VerifyWechat
func (StubVerifier) VerifyWechat(ctx context.Context, cb Callback) bool {
	return hasTradeNo(cb)
}

// VerifyAlipay implements Verifier.VerifyAlipay
func (StubVerifier) VerifyAlipay(ctx context.Context, cb Callback) bool {
	return hasTradeNo(cb)
}

// hasTradeNo treats any Unicode whitespace as blank, including U+00A0, the
// same rule the notblank request validator applies.
func hasTradeNo(cb Callback) bool {
	return strings.TrimSpace(cb.TradeNo) != ""
}

// Verify dispatches to the channel's verification method.
// Unknown channels never verify.
func Verify(ctx context.Context, v Verifier, channel Channel, cb Callback) bool {
	switch channel {
	case ChannelWechat:
		return v.VerifyWechat(ctx, cb)
	case ChannelAlipay:
		return v.VerifyAlipay(ctx, cb)
	default:
		return false
	}
}
