package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDFromPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "mobile number", phone: "13800008888", want: "u_8888"},
		{name: "exactly four digits", phone: "1234", want: "u_1234"},
		{name: "shorter than four", phone: "12", want: "u_12"},
		{name: "empty", phone: "", want: "u_"},
		{name: "with country code", phone: "+86 138 0000 1234", want: "u_1234"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, UserIDFromPhone(tc.phone))
		})
	}
}

func TestUserIDFromOpenID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		openid string
		want   string
	}{
		{name: "empty", openid: "", want: "wx_0"},
		{name: "ascii", openid: "hello", want: "wx_99162322"},
		{name: "negative hash", openid: "oX1a2b3c4d5e6f", want: "wx_844938231"},
		{name: "min int32 hash", openid: "polygenelubricants", want: "wx_-2147483648"},
		{name: "cjk", openid: "微信用户", want: "wx_750307138"},
		{name: "surrogate pair", openid: "😀", want: "wx_1772899"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, UserIDFromOpenID(tc.openid))
		})
	}
}

func TestUserIDFromOpenID_Stable(t *testing.T) {
	t.Parallel()
	assert.Equal(t, UserIDFromOpenID("openid-negative-test"), UserIDFromOpenID("openid-negative-test"))
	assert.Equal(t, "wx_880150462", UserIDFromOpenID("openid-negative-test"))
}
