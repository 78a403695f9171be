package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// statusRecorder keeps the status code for the request counter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush keeps event streams working through the wrapper.
func (rw *statusRecorder) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// isEventStream reports whether the client opened a server-sent event stream.
func isEventStream(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), ContentTypeEventStream)
}

// Middleware counts requests by route pattern so calendar year and month
// parameters stay out of the label set. Event streams live for minutes and
// are tracked by EventStreamsOpen instead of the latency histogram.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		stream := isEventStream(r)

		if stream {
			EventStreamsOpen.Inc()
			defer EventStreamsOpen.Dec()
		} else {
			HTTPRequestsInFlight.Inc()
			defer HTTPRequestsInFlight.Dec()
		}

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		path := routePattern(r)
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rw.status)).Inc()
		if !stream {
			HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		}
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return PathUnmatched
}
