package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatarURL(t *testing.T) {
	url := AvatarURL("  Budi@Example.COM ", 0)
	assert.Equal(t, AvatarURL("budi@example.com", defaultAvatarSize), url)
	assert.True(t, strings.HasPrefix(url, "https://www.gravatar.com/avatar/"))
	assert.True(t, strings.HasSuffix(url, "?d=identicon&s=64"))
	assert.NotEqual(t, url, AvatarURL("sari@example.com", 0))
}
