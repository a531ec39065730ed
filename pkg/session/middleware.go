package session

import (
	"context"
	"net/http"
	"time"
)

type ContextKey string

const (
	SessionIDKey ContextKey = "sessionID"

	HeaderName = "X-Session-Id"
	CookieName = "user_session_id"

	cookieMaxAge = 10 * 365 * 24 * time.Hour
)

// Middleware resolves the caller's token from the header, then the cookie, and issues a new
// cookie-backed token when neither is present.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderName)
		if !Valid(id) {
			id = ""
			if c, err := r.Cookie(CookieName); err == nil && Valid(c.Value) {
				id = c.Value
			}
		}
		if id == "" {
			id = NewID()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(cookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		w.Header().Set(HeaderName, id)

		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDKey, id)
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}
