package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lgmarques/taskhub/internal/common"
)

// requireAuth guards a route behind bearer-token authentication. A missing
// header, a non-Bearer scheme and an invalid token all fail the same way:
// the extracted token (possibly empty) goes through validation, which
// rejects it without saying why.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)

		var token string
		if strings.HasPrefix(header, common.BearerPrefix) {
			token = strings.TrimPrefix(header, common.BearerPrefix)
		}

		email, err := s.tokens.Validate(token)
		if err != nil {
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		// The subject must still resolve to a registered account. Only a
		// missing account counts as an authentication failure; a store
		// error is a server fault and must not masquerade as a 401.
		user, err := s.users.GetByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				s.writeError(w, http.StatusUnauthorized, "unauthorized")
			} else {
				s.writeServiceError(w, r, fmt.Errorf("%w: %v", common.ErrorInternal, err))
			}
			return
		}

		ctx := withCaller(r.Context(), &Caller{ID: user.ID, Email: user.Email})
		next(w, r.WithContext(ctx))
	}
}

// logRequests emits one structured log line per request, tagged with a
// generated request id.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusRecorder) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.written {
		w.written = true
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
