package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Счётчик операций аутентификации: register, login, refresh, logout
	AuthOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_operations_total",
			Help: "Total number of authentication operations",
		},
		[]string{"operation", "status"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func Register(registerer prometheus.Registerer) {
	registerer.MustRegister(AuthOperations, HTTPRequests, HTTPDuration)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveAuth : status = "success" или Kind ошибки, для внутренних ошибок "error"
func ObserveAuth(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
		if appErr, ok := apperror.From(err); ok {
			status = string(appErr.Kind)
		}
	}
	AuthOperations.WithLabelValues(operation, status).Inc()
}

// Middleware считает запросы по шаблону маршрута chi, а не по фактическому пути
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
