package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionHeader carries the shopper session id on requests and responses.
const SessionHeader = "X-Session-ID"

type contextKey string

const sessionIDKey contextKey = "session_id"

var validSessionID = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// Session attaches a shopper session id to the request context. A missing or
// malformed X-Session-ID header gets a fresh id. The id is always echoed in
// the response header.
func Session(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Health checks carry no session
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			id := r.Header.Get(SessionHeader)
			if !validSessionID.MatchString(id) {
				if id != "" {
					logger.Warn().Str("path", r.URL.Path).Msg("malformed session id replaced")
				}
				id = uuid.NewString()
				logger.Debug().Str("session_id", id).Msg("issued session id")
			}

			w.Header().Set(SessionHeader, id)
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

// WithSessionID returns a context carrying the session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext returns the session id set by Session, or "".
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}
