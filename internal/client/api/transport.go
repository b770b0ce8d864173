package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/visionai/console/internal/logging"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
)

// TokenSource returns the bearer token to send, or "" for none. It is called
// once per request.
type TokenSource func() string

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// bearerTransport sets Authorization from tokens at dispatch time. The
// header is removed when there is no token; the request is sent either way.
func bearerTransport(next http.RoundTripper, tokens TokenSource) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		req = req.Clone(req.Context())
		if token := tokens(); token != "" {
			req.Header.Set(HeaderAuthorization, "Bearer "+token)
		} else {
			req.Header.Del(HeaderAuthorization)
		}
		return next.RoundTrip(req)
	})
}

func requestIDTransport(next http.RoundTripper, log logging.Logger) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		req = req.Clone(req.Context())
		id := req.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
			req.Header.Set(HeaderRequestID, id)
		}

		start := time.Now()
		resp, err := next.RoundTrip(req)
		elapsed := time.Since(start)

		if err != nil {
			log.Debug(req.Context(), "api request failed",
				"method", req.Method, "path", req.URL.Path, "request_id", id,
				"duration", elapsed, "error", err)
			return nil, err
		}
		log.Debug(req.Context(), "api request",
			"method", req.Method, "path", req.URL.Path, "request_id", id,
			"status", resp.StatusCode, "duration", elapsed)
		return resp, nil
	})
}
