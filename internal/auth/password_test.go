package auth_test

import (
	"testing"

	"github.com/hugh/orgspace/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("verifies its own output", func(t *testing.T) {
		hash, err := auth.HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.True(t, auth.CheckPassword("correct horse battery staple", hash))
	})

	t.Run("salts every call", func(t *testing.T) {
		h1, err := auth.HashPassword("same-input")
		require.NoError(t, err)
		h2, err := auth.HashPassword("same-input")
		require.NoError(t, err)

		assert.NotEqual(t, h1, h2)
		assert.True(t, auth.CheckPassword("same-input", h1))
		assert.True(t, auth.CheckPassword("same-input", h2))
	})

	t.Run("never stores the plaintext", func(t *testing.T) {
		hash, err := auth.HashPassword("sup3rs3cret")
		require.NoError(t, err)
		assert.NotContains(t, hash, "sup3rs3cret")
	})
}

func TestCheckPassword(t *testing.T) {
	t.Run("rejects the wrong password", func(t *testing.T) {
		hash, err := auth.HashPassword("right")
		require.NoError(t, err)
		assert.False(t, auth.CheckPassword("wrong", hash))
	})

	t.Run("rejects a digest of a different input", func(t *testing.T) {
		hash, err := auth.HashPassword("other")
		require.NoError(t, err)
		assert.False(t, auth.CheckPassword("plaintext", hash))
	})

	t.Run("returns false on malformed digest", func(t *testing.T) {
		assert.False(t, auth.CheckPassword("anything", "not-a-bcrypt-digest"))
		assert.False(t, auth.CheckPassword("anything", ""))
	})
}
