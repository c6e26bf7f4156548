package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"cargoflash/pkg/logger"
)

// Middleware снимает длительность и статус каждого запроса. Лейбл route —
// шаблон mux-роута, а не сырой путь, иначе кардинальность метрик
// растет с каждым новым ID в URL.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			status := strconv.Itoa(rw.status)
			route := routeTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, route, status).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, status).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", status),
				logger.NewField("duration", duration.String()),
			).Info("HTTP request")
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
