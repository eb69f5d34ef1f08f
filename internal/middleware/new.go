package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgLog "skill-tracking-assistant/pkg/log"
)

const (
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

// Middleware bundles the HTTP middlewares of the service.
type Middleware struct {
	l        pkgLog.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates the middleware set. requestsPerMin bounds per-client traffic
// on rate-limited routes; idle client limiters age out after limiterTTL.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}
