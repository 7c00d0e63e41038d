package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	s := &HashService{}

	hash, err := s.HashPassword("secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, s.ComparePassword(hash, "secret"))
	assert.False(t, s.ComparePassword(hash, "wrong"))
}

func TestHashPasswordEmpty(t *testing.T) {
	s := &HashService{}

	hash, err := s.HashPassword("")
	assert.Error(t, err)
	assert.Empty(t, hash)
}
