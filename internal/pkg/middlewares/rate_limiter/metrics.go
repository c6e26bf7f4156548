package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rateLimitRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_rate_limit_rejected_total",
		Help: "Requests rejected by the token bucket rate limiter",
	},
	[]string{"method", "route"},
)
