package auth

import "net/http"

// CookieName is the session cookie carrying the signed token.
const CookieName = "auth_token"

// SessionCookie builds the cookie that installs a session token in the
// browser. secure must be true in production so the cookie only travels over
// TLS.
func SessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearSessionCookie builds the cookie directive that makes the client drop
// the session immediately (Max-Age=0, empty value).
func ClearSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ExtractToken reads the session token from the request's cookie store.
// A missing or empty cookie reports ok=false, not an error.
func ExtractToken(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
