package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/visionai/console/internal/buildinfo"
	"github.com/visionai/console/internal/logging"
)

const (
	DefaultTimeout = 15 * time.Second

	// maxDetail bounds the body text kept in a StatusError.
	maxDetail = 512
)

type Client struct {
	base       string
	httpclient *http.Client
	log        logging.Logger
}

type options struct {
	transport http.RoundTripper
	timeout   time.Duration
	log       logging.Logger
}

type Option func(*options)

// WithTransport replaces the innermost round tripper (http.DefaultTransport).
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewClient returns a client for the backend at baseURL. tokens is consulted
// on every request.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBaseURL, baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBaseURL, baseURL)
	}
	if tokens == nil {
		tokens = func() string { return "" }
	}

	o := options{
		transport: http.DefaultTransport,
		timeout:   DefaultTimeout,
		log:       logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	rt := requestIDTransport(bearerTransport(o.transport, tokens), o.log)

	return &Client{
		base:       strings.TrimSuffix(u.String(), "/"),
		httpclient: &http.Client{Transport: rt, Timeout: o.timeout},
		log:        o.log,
	}, nil
}

// BaseURL is the backend address without a trailing slash.
func (c *Client) BaseURL() string {
	return c.base
}

func (c *Client) apipath(p string) string {
	return c.base + "/" + strings.TrimPrefix(p, "/")
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.send(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.send(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodDelete, path, nil, out)
}

// NewRequest builds a request for path relative to the base URL.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apipath(path), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "visionai-console/"+buildinfo.Version())
	return req, nil
}

// Do sends req through the decorated transport. The response is returned
// unchecked; transport failures unwrap to ErrUnavailable.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpclient.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := c.NewRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	return nil
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	return &StatusError{Code: resp.StatusCode, Detail: detailFrom(raw)}
}

func detailFrom(raw []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil {
			return s
		}
		return truncate(string(payload.Detail))
	}
	return truncate(strings.TrimSpace(string(raw)))
}

func truncate(s string) string {
	if len(s) > maxDetail {
		return s[:maxDetail] + "..."
	}
	return s
}
