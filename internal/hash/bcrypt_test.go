package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcrypt_Hash(t *testing.T) {
	h := NewBcrypt()

	digest, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", digest)
	assert.True(t, strings.HasPrefix(digest, "$2a$"))
}

func TestBcrypt_Hash_Salted(t *testing.T) {
	h := NewBcrypt()

	first, err := h.Hash("pw1")
	require.NoError(t, err)
	second, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcrypt_Verify(t *testing.T) {
	h := NewBcrypt()

	digest, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.True(t, h.Verify("pw1", digest))
	assert.False(t, h.Verify("wrong", digest))
	assert.False(t, h.Verify("pw1", "not-a-digest"))
}
