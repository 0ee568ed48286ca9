package posts

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	upstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "postboard",
		Name:      "upstream_requests_total",
		Help:      "Requests sent to the posts API, by operation and outcome.",
	}, []string{"op", "outcome"})

	upstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "postboard",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of requests to the posts API.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(upstreamRequests, upstreamDuration)
}

// observe records one upstream call.
func observe(op string, start time.Time, err error) {
	upstreamDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	upstreamRequests.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &se):
		return "http_error"
	default:
		return "error"
	}
}
