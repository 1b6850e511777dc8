package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotID int64
	var gotOK bool
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "77")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, int64(77), gotID)

	for _, header := range []string{"", "0", "-5", "x"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("X-User-ID", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", seen)
	assert.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
}

type recordedRequest struct {
	method, path, status string
}

type fakeHTTPMetrics struct {
	requests []recordedRequest
}

func (m *fakeHTTPMetrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.requests = append(m.requests, recordedRequest{method, path, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/trains/{trainNumber}/live-status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trains/12951/live-status", nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, recordedRequest{"GET", "/trains/{trainNumber}/live-status", "404"}, m.requests[0])
}

type capturedLog struct {
	level, line string
}

type capturingLogger struct {
	lines []capturedLog
}

func (l *capturingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, capturedLog{"info", fmt.Sprintf(format, v...)})
}

func (l *capturingLogger) Warn(format string, v ...interface{}) {
	l.lines = append(l.lines, capturedLog{"warn", fmt.Sprintf(format, v...)})
}

func (l *capturingLogger) Error(format string, v ...interface{}) {
	l.lines = append(l.lines, capturedLog{"error", fmt.Sprintf(format, v...)})
}

func TestAccessLog_IncludesRequestID(t *testing.T) {
	log := &capturingLogger{}
	h := RequestID(AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pnr/1234567890", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Len(t, log.lines, 1)
	assert.Equal(t, "warn", log.lines[0].level)
	assert.Contains(t, log.lines[0].line, "GET /api/v1/pnr/1234567890")
	assert.Contains(t, log.lines[0].line, "status=404")
	assert.Contains(t, log.lines[0].line, "request_id=req-42")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	generated := rec.Header().Get("X-Request-ID")
	require.NotEmpty(t, generated)
	require.Len(t, log.lines, 2)
	assert.Contains(t, log.lines[1].line, "request_id="+generated)
}
