package security_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/security"
)

func TestVerifyPortalPasswordPlain(t *testing.T) {
	assert.True(t, security.VerifyPortalPassword("hunter2", "hunter2"))

	// Exact match only: case and whitespace variants must fail.
	for _, candidate := range []string{"Hunter2", "hunter2 ", " hunter2", "hunter2\n", "hunter", ""} {
		assert.False(t, security.VerifyPortalPassword(candidate, "hunter2"), "candidate %q", candidate)
	}
}

func TestVerifyPortalPasswordArgon2(t *testing.T) {
	hash, err := security.HashPassword("s3cret-portal-pw")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, security.VerifyPortalPassword("s3cret-portal-pw", hash))
	assert.False(t, security.VerifyPortalPassword("S3cret-portal-pw", hash))
	assert.False(t, security.VerifyPortalPassword("s3cret-portal-pw ", hash))
	assert.False(t, security.VerifyPortalPassword("", hash))
}

func TestVerifyPortalPasswordMalformedHash(t *testing.T) {
	// A broken hash must reject everything rather than fall back to a plain
	// comparison against the hash text.
	broken := "$argon2id$v=19$not-a-real-hash"
	assert.False(t, security.VerifyPortalPassword("anything", broken))
	assert.False(t, security.VerifyPortalPassword(broken, broken))
}

func TestHashPasswordUnique(t *testing.T) {
	a, err := security.HashPassword("same-input")
	require.NoError(t, err)
	b, err := security.HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "salts must differ")
	assert.True(t, security.VerifyPortalPassword("same-input", a))
	assert.True(t, security.VerifyPortalPassword("same-input", b))
}
