package security_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/security"
)

func TestCookiePolicyCrossSubdomain(t *testing.T) {
	policy := security.NewCookiePolicy(".entermaya.com", 7*24*time.Hour)
	c := policy.Session("tok123")

	assert.Equal(t, security.CookieName, c.Name)
	assert.Equal(t, "tok123", c.Value)
	assert.Equal(t, ".entermaya.com", c.Domain)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	assert.Equal(t, int(7*24*time.Hour/time.Second), c.MaxAge)
}

func TestCookiePolicyLocal(t *testing.T) {
	policy := security.NewCookiePolicy("", time.Hour)
	c := policy.Session("tok123")

	assert.Empty(t, c.Domain)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestCookiePolicyClearMatchesSet(t *testing.T) {
	// Set and clear must share every attribute except value and lifetime;
	// a mismatch leaves the stale cookie alive in some browsers.
	for _, domain := range []string{"", ".entermaya.com"} {
		policy := security.NewCookiePolicy(domain, time.Hour)
		set := policy.Session("tok123")
		cleared := policy.Expired()

		assert.Equal(t, set.Name, cleared.Name)
		assert.Equal(t, set.Domain, cleared.Domain)
		assert.Equal(t, set.Path, cleared.Path)
		assert.Equal(t, set.HttpOnly, cleared.HttpOnly)
		assert.Equal(t, set.Secure, cleared.Secure)
		assert.Equal(t, set.SameSite, cleared.SameSite)

		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
		assert.False(t, cleared.Expires.After(time.Unix(0, 0)))
	}
}
