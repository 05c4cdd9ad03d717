package api

import (
	"expvar"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	requestsTotal  = expvar.NewInt("requests_total")
	requestsErrors = expvar.NewInt("requests_errors_total")
)

// loggingTransport tags every outgoing request with an X-Request-ID and logs
// the round trip. Counters cover transport failures and non-2xx responses.
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := t.next.RoundTrip(clone)
	duration := time.Since(start)
	requestsTotal.Add(1)

	if err != nil {
		requestsErrors.Add(1)
		log.Printf("request method=%s path=%s error=%q duration_ms=%d request_id=%s", req.Method, req.URL.Path, err, duration.Milliseconds(), requestID)
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		requestsErrors.Add(1)
	}
	log.Printf("request method=%s path=%s status=%d duration_ms=%d request_id=%s", req.Method, req.URL.Path, resp.StatusCode, duration.Milliseconds(), requestID)
	return resp, nil
}
