package httpapi

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"restrofi/logger"
	"restrofi/storefront-svc/internal/apperr"
	"restrofi/storefront-svc/internal/service"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

type ctxKey int

const ctxStaffClaims ctxKey = iota

func RequestID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, reqID)
			ctx := r.Context()
			if log != nil {
				ctx = log.WithRequestID(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func AccessLog(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			ctx := log.WithFields(r.Context(), map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"duration_ms": time.Since(start).Milliseconds(),
			})
			log.Info(ctx, "http.request")
		})
	}
}

// StaffAuth requires a bearer token issued by the staff gate and scopes the
// request to the token's restaurant.
func StaffAuth(tokens service.StaffTokenParser, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				WriteError(r.Context(), log, w, apperr.New(apperr.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				WriteError(r.Context(), log, w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxStaffClaims, claims)
			if log != nil {
				ctx = log.WithFields(ctx, map[string]any{
					"restaurant_id":    claims.RestaurantID,
					"staff_session_id": claims.SessionID,
				})
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func staffClaims(ctx context.Context) *service.StaffClaims {
	claims, _ := ctx.Value(ctxStaffClaims).(*service.StaffClaims)
	return claims
}

// clientAddr is the caller's address. Behind api-gateway it is the last
// X-Forwarded-For hop, which the gateway appends itself.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		hops := strings.Split(fwd, ",")
		if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
			return last
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
