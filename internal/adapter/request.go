package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/sterling-client/internal/config"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/utils"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds a call when the config leaves it unset.
	DefaultTimeout = 10 * time.Second

	requestIDHeader = "X-Request-ID"
)

// Requester performs authenticated JSON calls against the Sterling API. Each
// call is bounded by its own deadline, carries the current bearer token and
// an X-Request-ID, and reports failures as one of [ErrTimeout], [ErrAborted],
// [ErrNetwork], [ErrDecode], [ErrSessionExpired] or [*APIError].
//
// A 401 response invalidates the session through the [SessionInvalidator]
// before the call fails, unless the call opted out with [Anonymous].
type Requester struct {
	client  *utils.HTTPClient
	timeout time.Duration
	limiter *rate.Limiter

	credentials CredentialSource
	invalidator SessionInvalidator

	logger *logger.Logger
}

// NewRequester builds a Requester for the API at cfg.HTTPAddress. A positive
// cfg.RateLimit paces outbound calls to that many per second.
func NewRequester(cfg config.ClientAdapter, credentials CredentialSource, invalidator SessionInvalidator, log *logger.Logger) (*Requester, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	r := &Requester{
		// deadlines come from the call context so that a timeout can be told
		// apart from a cancellation
		client:      utils.NewHTTPClient(baseURL, 0),
		timeout:     timeout,
		credentials: credentials,
		invalidator: invalidator,
		logger:      log,
	}

	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return r, nil
}

// BaseURL returns the normalised API origin.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL
}

// Option adjusts a single call.
type Option func(*callOptions)

type callOptions struct {
	headers   map[string]string
	query     map[string]string
	timeout   time.Duration
	anonymous bool
}

// WithHeader adds an extra request header.
func WithHeader(key, value string) Option {
	return func(o *callOptions) { o.headers[key] = value }
}

// WithQuery adds a query parameter.
func WithQuery(key, value string) Option {
	return func(o *callOptions) { o.query[key] = value }
}

// WithTimeout overrides the call deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *callOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// Anonymous sends the call without a bearer token and treats a 401 as an
// ordinary [*APIError] instead of a session expiry. Login and signup use it:
// wrong credentials must not log the user out.
func Anonymous() Option {
	return func(o *callOptions) { o.anonymous = true }
}

// Get issues a GET and decodes the JSON body into out. out may be nil.
func (r *Requester) Get(ctx context.Context, path string, out any, opts ...Option) error {
	resp, err := r.do(ctx, http.MethodGet, path, nil, opts)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// Post issues a POST with body encoded as JSON and decodes the response into
// out. out may be nil.
func (r *Requester) Post(ctx context.Context, path string, body, out any, opts ...Option) error {
	resp, err := r.do(ctx, http.MethodPost, path, body, opts)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// Patch issues a PATCH with body encoded as JSON and decodes the response
// into out. out may be nil.
func (r *Requester) Patch(ctx context.Context, path string, body, out any, opts ...Option) error {
	resp, err := r.do(ctx, http.MethodPatch, path, body, opts)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// Delete issues a DELETE and decodes the response into out. out may be nil.
func (r *Requester) Delete(ctx context.Context, path string, out any, opts ...Option) error {
	resp, err := r.do(ctx, http.MethodDelete, path, nil, opts)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// Download issues a GET and returns the raw body, for binary resources such
// as PDF reports.
func (r *Requester) Download(ctx context.Context, path string, opts ...Option) ([]byte, error) {
	opts = append([]Option{WithHeader("Accept", "*/*")}, opts...)
	resp, err := r.do(ctx, http.MethodGet, path, nil, opts)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (r *Requester) do(ctx context.Context, method, path string, body any, opts []Option) (*resty.Response, error) {
	o := callOptions{
		headers: make(map[string]string),
		query:   make(map[string]string),
		timeout: r.timeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	path = normalizePath(path)

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, r.transportError(ctx, nil, method, path, err)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req := r.client.R().
		SetContext(callCtx).
		SetHeader(requestIDHeader, utils.RequestID(ctx))

	if !o.anonymous && r.credentials != nil {
		if token := r.credentials.Token(ctx); token != "" {
			req.SetAuthToken(token)
		}
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	req.SetHeaders(o.headers)
	req.SetQueryParams(o.query)

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, r.transportError(ctx, callCtx, method, path, err)
	}

	r.logger.Debug().Str("func", "*Requester.do").
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Send()

	if resp.StatusCode() == http.StatusUnauthorized && !o.anonymous {
		r.logger.Warn().Str("func", "*Requester.do").Str("path", path).Msg("session expired")
		if r.invalidator != nil {
			r.invalidator.InvalidateSession(ctx)
		}
		return nil, ErrSessionExpired
	}

	if err = mapHTTPError(resp); err != nil {
		r.logger.Err(err).Str("func", "*Requester.do").
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Str("status_text", http.StatusText(resp.StatusCode())).
			Bytes("response", resp.Body()).
			Msg("API ERROR")
		return nil, err
	}

	return resp, nil
}

// transportError classifies a failure that produced no HTTP response.
// callCtx may be nil when the call never started.
func (r *Requester) transportError(ctx, callCtx context.Context, method, path string, err error) error {
	var out error
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		out = fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
	case errors.Is(ctx.Err(), context.DeadlineExceeded),
		callCtx != nil && errors.Is(callCtx.Err(), context.DeadlineExceeded),
		errors.Is(err, context.DeadlineExceeded):
		out = ErrTimeout
	case callCtx == nil:
		// the limiter refused to wait past the caller's deadline
		out = ErrTimeout
	default:
		out = fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err)
	}

	r.logger.Err(err).Str("func", "*Requester.do").
		Str("method", method).
		Str("path", path).
		Msg(out.Error())
	return out
}

func decodeJSON(resp *resty.Response, out any) error {
	if out == nil || resp.StatusCode() == http.StatusNoContent {
		return nil
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || !isJSON(resp.Header().Get("Content-Type")) {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
