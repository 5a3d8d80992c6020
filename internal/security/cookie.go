package security

import (
	"net/http"
	"time"
)

// CookieName is fixed; the frontend looks it up by name across subdomains.
const CookieName = "maya_auth_token"

// CookiePolicy is the single source of truth for session cookie attributes.
// Both the login Set-Cookie and the logout clear derive from the same
// attribute set; a mismatch between the two leaves stale cookies behind on
// some browsers.
//
// Two modes, switched by whether a cross-subdomain Domain is configured:
//
//	Domain set (e.g. ".entermaya.com"): Secure + SameSite=None, shared
//	across subdomains over HTTPS.
//	Domain empty (local dev): insecure + SameSite=Lax.
type CookiePolicy struct {
	Domain string
	TTL    time.Duration
}

func NewCookiePolicy(domain string, ttl time.Duration) CookiePolicy {
	return CookiePolicy{Domain: domain, TTL: ttl}
}

// Session builds the cookie carrying a freshly issued token.
func (p CookiePolicy) Session(token string) *http.Cookie {
	c := p.base()
	c.Value = token
	c.MaxAge = int(p.TTL / time.Second)
	return c
}

// Expired builds the clearing cookie: same attributes, empty value,
// immediate expiry.
func (p CookiePolicy) Expired() *http.Cookie {
	c := p.base()
	c.Value = ""
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}

func (p CookiePolicy) base() *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		Domain:   p.Domain,
		HttpOnly: true,
	}
	if p.Domain != "" {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	} else {
		c.Secure = false
		c.SameSite = http.SameSiteLaxMode
	}
	return c
}
