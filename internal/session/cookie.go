package session

import "net/http"

// CookieName is the browser cookie holding the session token. It is read by
// the route guard before any handler runs, and mirrored from the durable
// store so the two never diverge for long.
const CookieName = "session_token"

// CookiePolicy carries the attributes applied to every session cookie write.
type CookiePolicy struct {
	MaxAge   int
	Secure   bool
	HTTPOnly bool
}

// DefaultCookiePolicy is the development posture: 24h lifetime, readable by
// in-page scripts, served over plain HTTP.
var DefaultCookiePolicy = CookiePolicy{
	MaxAge:   24 * 60 * 60,
	Secure:   false,
	HTTPOnly: false,
}

// Write sets the session cookie on the response.
func (p CookiePolicy) Write(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   p.MaxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   p.Secure,
		HttpOnly: p.HTTPOnly,
	})
}

// Expire clears the session cookie immediately.
func (p CookiePolicy) Expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   p.Secure,
		HttpOnly: p.HTTPOnly,
	})
}
