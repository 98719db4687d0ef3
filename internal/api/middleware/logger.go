package middleware

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// passwordPattern matches a JSON password field so its value can be masked
// before the body reaches any log sink.
var passwordPattern = regexp.MustCompile(`(?i)("password"\s*:\s*")[^"]*"`)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// clientHolder carries the caller identity for this request's log lines.
// The authenticator fills it in once the API key has been resolved; until
// then every line reads "Unknown".
type clientHolder struct {
	label string
}

type contextKey string

const clientHolderKey contextKey = "clientHolder"

func holderFromContext(ctx context.Context) *clientHolder {
	h, _ := ctx.Value(clientHolderKey).(*clientHolder)
	return h
}

// ClientLabel returns the resolved client identifier for this request, or
// "Unknown" before the authenticator has run.
func ClientLabel(ctx context.Context) string {
	if h := holderFromContext(ctx); h != nil {
		return h.label
	}
	return "Unknown"
}

// RequestLogger logs every inbound request with a redacted copy of its JSON
// body, then logs the outcome once the handler chain returns. The body is
// re-buffered so downstream stages can read it again.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			holder := &clientHolder{label: "Unknown"}
			r = r.WithContext(context.WithValue(r.Context(), clientHolderKey, holder))

			body := ""
			if r.Body != nil && strings.Contains(r.Header.Get("Content-Type"), "application/json") {
				raw, err := io.ReadAll(r.Body)
				if err == nil {
					r.Body = io.NopCloser(bytes.NewReader(raw))
					body = passwordPattern.ReplaceAllString(string(raw), `${1}***"`)
				}
			}

			logger.Info("request received",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("ip", clientIP(r)),
				zap.String("client", holder.label),
				zap.String("body", body),
			)

			rec := &statusRecorder{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			next.ServeHTTP(rec, r)

			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("client", holder.label),
			)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
