package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/handlers/response"
	"gitlab.com/bhajan-roster.net/internal/static/errs"
)

type shareClaimsKey struct{}

type MiddlewareProvider struct {
	tokens primary.ShareTokenService
	logger primary.Logger
}

func NewMiddlewareProvider(tokens primary.ShareTokenService, logger primary.Logger) *MiddlewareProvider {
	return &MiddlewareProvider{
		tokens: tokens,
		logger: logger,
	}
}

// ShareTokenMiddleware admits requests carrying a valid share token, either
// as ?token= or as "Authorization: Bearer <token>".
func (m *MiddlewareProvider) ShareTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			tokenString = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		if tokenString == "" {
			response.WriteError(w, response.ErrorMessage{
				Message:    "share token missing",
				StatusCode: http.StatusUnauthorized,
			})
			return
		}

		claims, err := m.tokens.VerifyShareToken(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("Rejected share token", "error", err)
			response.WriteError(w, response.ErrorMessage{
				Message:    errs.ErrInvalidShareToken.Error(),
				StatusCode: http.StatusUnauthorized,
			})
			return
		}

		ctx := context.WithValue(r.Context(), shareClaimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ShareClaimsFrom returns the claims stored by ShareTokenMiddleware.
func ShareClaimsFrom(ctx context.Context) (primary.ShareClaims, bool) {
	claims, ok := ctx.Value(shareClaimsKey{}).(primary.ShareClaims)
	return claims, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs method, path, status and duration of every request.
func (m *MiddlewareProvider) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.logger.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
