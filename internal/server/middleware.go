package server

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey int

const ctxKeySession ctxKey = iota

// sessionMiddleware resolves the Bearer token to a live player session and
// stores it in the request context.
func sessionMiddleware(sessions *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ps, err := sessionFromRequest(r, sessions)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or missing session token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, ps)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFromRequest reads the token from the Authorization header, falling
// back to a token query parameter for SSE and websocket clients that cannot
// set headers.
func sessionFromRequest(r *http.Request, sessions *Registry) (*playerSession, error) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		token = r.URL.Query().Get("token")
	}
	if token == "" {
		return nil, ErrNotFound
	}
	return sessions.Get(token)
}

func sessionFrom(r *http.Request) *playerSession {
	return r.Context().Value(ctxKeySession).(*playerSession)
}
