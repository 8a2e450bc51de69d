package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Logging пишет строку лога на каждый запрос
func Logging(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			if rec.status >= http.StatusInternalServerError {
				log.Warn("%s %s - status=%d, duration=%s", r.Method, r.URL.Path, rec.status, elapsed)
				return
			}
			log.Info("%s %s - status=%d, duration=%s", r.Method, r.URL.Path, rec.status, elapsed)
		})
	}
}
