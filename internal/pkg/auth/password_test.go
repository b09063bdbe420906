package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Correct-Horse-42")
	require.NoError(t, err)
	assert.NotEqual(t, "Correct-Horse-42", hash)

	assert.True(t, CheckPassword(hash, "Correct-Horse-42"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("not-a-hash", "Correct-Horse-42"))
}
