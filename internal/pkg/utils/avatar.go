package utils

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
)

const defaultAvatarSize = 64

// AvatarURL returns the gravatar image for an account e-mail, falling back to
// a generated identicon for addresses without one.
func AvatarURL(email string, size int) string {
	if size <= 0 {
		size = defaultAvatarSize
	}
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	q := url.Values{"s": {strconv.Itoa(size)}, "d": {"identicon"}}
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?" + q.Encode()
}
