package services

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedRoute = "unmatched"

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_http_requests_total",
		Help: "HTTP requests handled, by route template, method and status.",
	}, []string{"route", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forum_http_request_duration_seconds",
		Help:    "HTTP request latency by route template and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// StatusWriter records the status code written by a handler.
type StatusWriter struct {
	http.ResponseWriter
	Status int
}

func (w *StatusWriter) WriteHeader(status int) {
	w.Status = status
	w.ResponseWriter.WriteHeader(status)
}

// NewStatusWriter wraps w, assuming 200 until WriteHeader says otherwise.
func NewStatusWriter(w http.ResponseWriter) *StatusWriter {
	if sw, ok := w.(*StatusWriter); ok {
		return sw
	}
	return &StatusWriter{ResponseWriter: w, Status: http.StatusOK}
}

type routeLabelKey struct{}

type routeLabel struct {
	name string
}

// TrackRoute wraps the whole router so that middleware outside mux can learn
// which route served the request. Requests mux never matched keep the
// "unmatched" label.
func TrackRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(routeLabelKey{}).(*routeLabel); ok {
			next.ServeHTTP(w, r)
			return
		}
		label := &routeLabel{name: unmatchedRoute}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), routeLabelKey{}, label)))
	})
}

// RecordRoute is mux middleware storing the matched path template in the
// label installed by TrackRoute.
func RecordRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if label, ok := r.Context().Value(routeLabelKey{}).(*routeLabel); ok {
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					label.name = tmpl
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RouteTemplate returns the route label for r. It is only meaningful once the
// router has run.
func RouteTemplate(r *http.Request) string {
	if label, ok := r.Context().Value(routeLabelKey{}).(*routeLabel); ok {
		return label.name
	}
	return unmatchedRoute
}

// InstrumentRequests counts requests and observes their latency. It must sit
// inside TrackRoute.
func InstrumentRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := NewStatusWriter(w)

		next.ServeHTTP(sw, r)

		route := RouteTemplate(r)
		requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(sw.Status)).Inc()
		requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
