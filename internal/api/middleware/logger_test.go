package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger_RedactsPassword(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	var seenBody string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		seenBody = string(raw)
	})

	body := `{"userName":"alice","password":"Secret1!"}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	RequestLogger(logger)(next).ServeHTTP(rec, req)

	// downstream stages read the original body untouched
	assert.Equal(t, body, seenBody)

	entries := logs.FilterMessage("request received").All()
	require.Len(t, entries, 1)
	logged := entries[0].ContextMap()["body"].(string)
	assert.NotContains(t, logged, "Secret1!")
	assert.Contains(t, logged, `"password":"***"`)
	assert.Contains(t, logged, `"userName":"alice"`)
}

func TestRequestLogger_RedactsMixedCaseField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"Password" : "Secret1!"}`))
	req.Header.Set("Content-Type", "application/json")

	RequestLogger(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request received").All()
	require.Len(t, entries, 1)
	logged := entries[0].ContextMap()["body"].(string)
	assert.NotContains(t, logged, "Secret1!")
}

func TestRequestLogger_UnknownClientBeforeAuth(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Unknown", ClientLabel(r.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	RequestLogger(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request received").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Unknown", entries[0].ContextMap()["client"])
}

func TestRequestLogger_CompletionStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	RequestLogger(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusNotFound, entries[0].ContextMap()["status"])
}

func TestClientLabel_NoHolder(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "Unknown", ClientLabel(req.Context()))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	assert.Equal(t, "203.0.113.7", clientIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.4, 203.0.113.7")
	assert.Equal(t, "198.51.100.4", clientIP(req))
}
