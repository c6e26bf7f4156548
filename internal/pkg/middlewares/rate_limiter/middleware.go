package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cargoflash/pkg/logger"
)

// Middleware отбрасывает запросы сверх пропускной способности limiter'а.
// Лимит общий на процесс, без разбивки по клиентам.
func Middleware(log handlerLogger, limitQPS int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if muxRoute := mux.CurrentRoute(r); muxRoute != nil {
				if template, err := muxRoute.GetPathTemplate(); err == nil {
					route = template
				}
			}

			rateLimitRejectedTotal.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limitQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"error":"Too Many Requests"}`))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("route", route),
				).Error("write rate limit response")
			}
		})
	}
}
