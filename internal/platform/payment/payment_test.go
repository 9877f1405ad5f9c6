package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubVerifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		channel Channel
		tradeNo string
		want    bool
	}{
		{name: "wechat with trade number", channel: ChannelWechat, tradeNo: "T1", want: true},
		{name: "alipay with trade number", channel: ChannelAlipay, tradeNo: "2024A", want: true},
		{name: "wechat empty trade number", channel: ChannelWechat, tradeNo: "", want: false},
		{name: "alipay blank trade number", channel: ChannelAlipay, tradeNo: " \t", want: false},
		{name: "ideographic space trade number", channel: ChannelWechat, tradeNo: "\u3000", want: false},
		{name: "non-breaking space trade number", channel: ChannelAlipay, tradeNo: "\u00a0", want: false},
		{name: "trade number with surrounding space", channel: ChannelWechat, tradeNo: " T1 ", want: true},
		{name: "unknown channel", channel: Channel("UNIONPAY"), tradeNo: "T1", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cb := Callback{OrderNo: "OD1", TradeNo: tc.tradeNo, Status: "SUCCESS"}
			assert.Equal(t, tc.want, Verify(context.Background(), StubVerifier{}, tc.channel, cb))
		})
	}
}
