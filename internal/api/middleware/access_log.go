package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку лога на каждый запрос с его X-Request-ID.
// Должен подключаться после RequestID.
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			format := "HTTP %s %s - status=%d, duration=%s, request_id=%s"
			args := []interface{}{r.Method, r.URL.Path, rec.status, time.Since(start), GetRequestID(r.Context())}
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error(format, args...)
			case rec.status >= http.StatusBadRequest:
				logger.Warn(format, args...)
			default:
				logger.Info(format, args...)
			}
		})
	}
}
