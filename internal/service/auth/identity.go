package auth

import (
	"strconv"
	"unicode/utf16"
)

const (
	phoneUserPrefix  = "u_"
	wechatUserPrefix = "wx_"
	phoneSuffixLen   = 4
)

// UserIDFromPhone derives a demo user ID from the last four characters of
// a phone number. Shorter numbers are used whole.
func UserIDFromPhone(phone string) string {
	runes := []rune(phone)
	if len(runes) > phoneSuffixLen {
		runes = runes[len(runes)-phoneSuffixLen:]
	}
	return phoneUserPrefix + string(runes)
}

// UserIDFromOpenID derives a stable demo user ID from a WeChat openid.
// The suffix is the absolute value of a 32-bit polynomial hash over the
// openid's UTF-16 code units, so IDs match those issued by earlier
// deployments. The absolute value of math.MinInt32 overflows back to itself.
func UserIDFromOpenID(openid string) string {
	h := stringHash32(openid)
	if h < 0 {
		h = -h
	}
	return wechatUserPrefix + strconv.FormatInt(int64(h), 10)
}

// stringHash32 computes s[0]*31^(n-1) + ... + s[n-1] over UTF-16 code units
// with int32 wraparound.
func stringHash32(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(u)
	}
	return h
}
