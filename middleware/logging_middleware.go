package middleware

import (
	"net/http"
	"time"

	"main/utils"

	"go.uber.org/zap"
)

// RequestLoggingMiddleware логирует входящие HTTP запросы
func RequestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		utils.Logger.Debug("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
