package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the fixed name of the session cookie.
const SessionCookieName = "exo-session"

// CookieManager binds session tokens to the HTTP cookie that carries
// them: HTTP-only, SameSite=Lax, path "/", max-age equal to the token
// lifetime, Secure only in deployments behind HTTPS.
type CookieManager struct {
	codec  *Codec
	secure bool
}

// NewCookieManager creates a cookie manager around the token codec.
func NewCookieManager(codec *Codec, secure bool) *CookieManager {
	return &CookieManager{codec: codec, secure: secure}
}

// Attach issues a token for the payload and sets the session cookie
// on the response.
func (m *CookieManager) Attach(c *gin.Context, payload SessionPayload) error {
	token, err := m.codec.Issue(payload)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(m.codec.TTL().Seconds()), "/", "", m.secure, true)
	return nil
}

// Clear expires the session cookie immediately. Idempotent whether or
// not a cookie was present.
func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.secure, true)
}

// Read extracts and verifies the session cookie. A missing cookie and
// an invalid one are indistinguishable to callers; both yield nil.
func (m *CookieManager) Read(c *gin.Context) *SessionPayload {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		return nil
	}
	return m.codec.Verify(token)
}
