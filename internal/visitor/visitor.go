// Package visitor derives a stable anonymous identity for each browser,
// used as the uniqueness key for likes. The identity is an opaque token in a
// long-lived cookie; there is no account or login behind it.
package visitor

import (
	"net/http"

	"github.com/google/uuid"
)

// CookieName is the identity cookie. The name matches the user_hash column in
// page_likes, so existing cookies keep their like state across deploys.
const CookieName = "user_hash"

// cookieMaxAge is one year in seconds.
const cookieMaxAge = 365 * 24 * 60 * 60

// Resolver issues and reads visitor identity cookies.
type Resolver struct {
	secure bool
}

// NewResolver creates a Resolver. secure controls the cookie's Secure flag;
// turn it off only for local plain-HTTP development.
func NewResolver(secure bool) *Resolver {
	return &Resolver{secure: secure}
}

// Resolve returns the visitor id for this request. An existing cookie is
// reused verbatim; otherwise a fresh token is minted and set on the response.
// Resolve never fails: absence of any signal still yields a usable identity.
func (v *Resolver) Resolve(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := "user_" + uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   v.secure,
	})
	return id
}
