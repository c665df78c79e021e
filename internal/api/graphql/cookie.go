package graphql

import (
	"context"
	"net/http"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// sessionCookieMaxAge keeps the session cookie for one year; the token
// itself carries no server-side expiry.
const sessionCookieMaxAge = 365 * 24 * 60 * 60

type cookieWriterKey struct{}

// WithCookieWriter returns a context from which resolvers can reach the
// response writer to set or clear the session cookie.
func WithCookieWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, cookieWriterKey{}, w)
}

func cookieWriterFromContext(ctx context.Context) (http.ResponseWriter, bool) {
	w, ok := ctx.Value(cookieWriterKey{}).(http.ResponseWriter)
	return w, ok
}

// setSessionCookie attaches the session token as an httpOnly cookie.
func setSessionCookie(ctx context.Context, token string) {
	w, ok := cookieWriterFromContext(ctx)
	if !ok {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie instructs the client to drop the session cookie.
func clearSessionCookie(ctx context.Context) {
	w, ok := cookieWriterFromContext(ctx)
	if !ok {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
