// Package flash carries one-time admin messages across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-admin/internal/app"
)

// CookieName is the cookie holding the pending flash.
const CookieName = "ca_flash"

// maxAge bounds how long an unread flash survives.
const maxAge = 60

// Store writes and consumes flash cookies.
type Store struct {
	secure bool
}

// NewStore returns a Store. secure marks the cookie Secure for HTTPS deployments.
func NewStore(secure bool) *Store {
	return &Store{secure: secure}
}

// Set stores f for the next request. A nil or empty flash is a no-op.
func (s *Store) Set(c *gin.Context, f *app.Flash) {
	if f == nil || len(f.Messages) == 0 {
		return
	}

	raw, err := json.Marshal(f)
	if err != nil {
		return
	}

	s.write(c, base64.RawURLEncoding.EncodeToString(raw), maxAge)
}

// Pop returns the pending flash and clears it. It returns nil when there is
// none or the cookie cannot be decoded.
func (s *Store) Pop(c *gin.Context) *app.Flash {
	value, err := c.Cookie(CookieName)
	if err != nil || value == "" {
		return nil
	}

	s.write(c, "", -1)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	var f app.Flash
	if err := json.Unmarshal(raw, &f); err != nil || len(f.Messages) == 0 {
		return nil
	}

	switch f.Kind {
	case app.FlashSuccess, app.FlashError:
		return &f
	default:
		return nil
	}
}

func (s *Store) write(c *gin.Context, value string, age int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   age,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
