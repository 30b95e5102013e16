package transport

import (
	"bytes"
	"circuits-lab/contract"
	"circuits-lab/errors"
	"circuits-lab/observability"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"syscall"
)

const (
	// DefaultMaxAttempts is the total number of tries, first one included.
	DefaultMaxAttempts = 3
	maxResponseBytes   = 4 << 20
)

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	HTTPClient  HTTPDoer
	Tokens      contract.ITokenSource
	MaxAttempts int
	Logger      *slog.Logger
	Metrics     *observability.Metrics
}

type Request struct {
	Method string
	URL    string
	Form   url.Values
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport sends requests with a bounded number of attempts when the
// connection drops. It never looks at status codes.
type Transport struct {
	http        HTTPDoer
	tokens      contract.ITokenSource
	maxAttempts int
	log         *slog.Logger
	metrics     *observability.Metrics
}

func NewTransport(config Config) *Transport {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	log := config.Logger
	if log == nil {
		log = slog.Default()
	}
	attempts := config.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	return &Transport{
		http:        httpClient,
		tokens:      config.Tokens,
		maxAttempts: attempts,
		log:         log,
		metrics:     config.Metrics,
	}
}

// Send performs req. On a transient connection failure it tries again, up
// to the configured number of attempts, then fails with
// errors.ErrTransportFailure. Any other failure is returned at once.
func (t *Transport) Send(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	for attempt := 1; attempt <= t.maxAttempts; attempt++ {
		resp, err := t.do(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !IsTransient(err) {
			t.log.Error("Request failed", "method", req.Method, "url", req.URL, "error", err)
			return nil, err
		}
		lastErr = err
		if attempt < t.maxAttempts {
			t.metrics.ObserveRetry()
			t.log.Warn("Server disconnected, attempting again",
				"method", req.Method, "url", req.URL, "attempt", attempt, "error", err)
		}
	}

	t.metrics.ObserveExhausted()
	t.log.Error("Failed to make request", "method", req.Method, "url", req.URL, "attempts", t.maxAttempts)
	return nil, fmt.Errorf("%w: %s %s after %d attempts: %w",
		errors.ErrTransportFailure, req.Method, req.URL, t.maxAttempts, lastErr)
}

func (t *Transport) do(ctx context.Context, req Request) (*Response, error) {
	var body io.Reader
	if req.Form != nil {
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("transport: failed to create request: %w", err)
	}
	if req.Form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if t.tokens != nil {
		token, err := t.tokens.Token(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	httpResp, err := t.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("transport: %s %s: %w", req.Method, req.URL, err)
	}
	defer httpResp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(httpResp.Body, maxResponseBytes)); err != nil {
		return nil, fmt.Errorf("transport: failed to read response body: %w", err)
	}

	return &Response{StatusCode: httpResp.StatusCode, Body: buf.Bytes()}, nil
}

// IsTransient reports whether err means the server dropped the connection,
// in which case the same request may simply be sent again.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return stderrors.Is(err, io.EOF) ||
		stderrors.Is(err, io.ErrUnexpectedEOF) ||
		stderrors.Is(err, syscall.ECONNRESET) ||
		stderrors.Is(err, syscall.ECONNABORTED) ||
		stderrors.Is(err, syscall.EPIPE)
}
