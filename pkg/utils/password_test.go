package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	h, err := HashPassword("s3cret")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "$argon2id$v=19$"))

	assert.True(t, CheckPassword("s3cret", h))
	assert.False(t, CheckPassword("S3cret", h))
	assert.False(t, CheckPassword("", h))
}

func TestHashPasswordSaltVaries(t *testing.T) {
	a, err := HashPassword("same")
	assert.NoError(t, err)
	b, err := HashPassword("same")
	assert.NoError(t, err)
	// 盐随机，同一密码两次哈希不同
	assert.NotEqual(t, a, b)
	assert.True(t, CheckPassword("same", a))
	assert.True(t, CheckPassword("same", b))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("pw", ""))
	assert.False(t, CheckPassword("pw", "not-a-hash"))
	assert.False(t, CheckPassword("pw", "$argon2i$v=19$m=65536,t=3,p=4$abc$def"))
	assert.False(t, CheckPassword("pw", "$argon2id$v=19$m=65536,t=3,p=4$!!!$def"))
}
