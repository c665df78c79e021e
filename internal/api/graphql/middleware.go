package graphql

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/askhub/askhub-server/internal/logger"
	"github.com/askhub/askhub-server/internal/model"
)

// TokenService resolves user IDs from session tokens.
type TokenService interface {
	ParseSessionToken(token string) (uuid.UUID, error)
}

// Authenticate reads the session cookie and injects the user ID into the
// request context. Requests without a valid cookie pass through anonymous;
// mutations that need a user enforce that themselves.
type Authenticate struct {
	tokens         TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle wraps next with session cookie authentication.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := m.authenticate(r)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticate(r *http.Request) context.Context {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return r.Context()
	}

	userID, err := m.tokens.ParseSessionToken(cookie.Value)
	if err != nil {
		m.logger.Debug("Authenticate middleware: invalid session token",
			"error", err.Error())
		return r.Context()
	}

	return m.contextManager.SetUserIDToContext(r.Context(), userID)
}

// Logging logs HTTP requests and their outcomes.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		l.logger.Info("HTTP request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
			"status", rec.status)
	})
}
