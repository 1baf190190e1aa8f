package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("open sesame")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "open sesame", hash, "Hash should not be the plaintext")

	assert.True(t, CheckPasswordHash("open sesame", hash), "Correct password should verify")
	assert.False(t, CheckPasswordHash("wrong password", hash), "Wrong password should not verify")
	assert.False(t, CheckPasswordHash("open sesame", "not a bcrypt hash"), "Garbage hash should not verify")
}
