package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/suitter-labs/suitter-indexer/internal/logger"
)

// RetryConfig controls the exponential backoff applied to retryable responses
type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryConfig is used when a zero RetryConfig is passed to NewHTTPClient
var DefaultRetryConfig = RetryConfig{
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     5 * time.Second,
	MaxElapsedTime:  20 * time.Second,
}

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// PostJSON marshals body, posts it and unmarshals the response into result
	PostJSON(ctx context.Context, url string, headers map[string]string, body interface{}, result interface{}) error

	// PostJSONOnce is PostJSON with a single attempt, for requests that must not be replayed
	PostJSONOnce(ctx context.Context, url string, headers map[string]string, body interface{}, result interface{}) error

	// GetJSON performs a GET request and unmarshals the response into result
	GetJSON(ctx context.Context, url string, headers map[string]string, result interface{}) error
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
	retry  RetryConfig
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration, retry RetryConfig) HTTPClient {
	if retry == (RetryConfig{}) {
		retry = DefaultRetryConfig
	}
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		retry: retry,
	}
}

// PostJSON performs a JSON POST request.
// 429 and 5xx responses and network errors are retried with exponential backoff.
func (c *RealHTTPClient) PostJSON(ctx context.Context, url string, headers map[string]string, body interface{}, result interface{}) error {
	return c.postJSON(ctx, url, headers, body, result, c.newBackOff())
}

// PostJSONOnce performs a JSON POST request exactly once. Any failure, including
// a lost response, is returned to the caller.
func (c *RealHTTPClient) PostJSONOnce(ctx context.Context, url string, headers map[string]string, body interface{}, result interface{}) error {
	return c.postJSON(ctx, url, headers, body, result, &backoff.StopBackOff{})
}

func (c *RealHTTPClient) postJSON(ctx context.Context, url string, headers map[string]string, body interface{}, result interface{}, policy backoff.BackOff) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	respBody, err := c.doWithRetry(ctx, policy, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	})
	if err != nil {
		return err
	}

	return decodeResponse(respBody, result)
}

// GetJSON performs a JSON GET request with the same retry policy as PostJSON
func (c *RealHTTPClient) GetJSON(ctx context.Context, url string, headers map[string]string, result interface{}) error {
	respBody, err := c.doWithRetry(ctx, c.newBackOff(), func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	})
	if err != nil {
		return err
	}

	return decodeResponse(respBody, result)
}

// doWithRetry builds a fresh request for every attempt so the body can be replayed
func (c *RealHTTPClient) doWithRetry(ctx context.Context, policy backoff.BackOff, newRequest func() (*http.Request, error)) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		req, err := newRequest()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
			}
		}()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			logger.Warn("rate limited, retrying with backoff", zap.String("url", req.URL.String()))
			return fmt.Errorf("rate limited (429)")
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("server error %d: %s", resp.StatusCode, truncate(body, 256))
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return backoff.Permanent(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, truncate(body, 256)))
		}

		respBody = body
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return respBody, nil
}

func (c *RealHTTPClient) newBackOff() backoff.BackOff {
	return newExponentialBackOff(c.retry)
}

func newExponentialBackOff(retry RetryConfig) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retry.InitialInterval
	b.MaxInterval = retry.MaxInterval
	b.MaxElapsedTime = retry.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5
	return b
}

// retryTransport replays requests that failed with a network error, 429 or 5xx
type retryTransport struct {
	base  http.RoundTripper
	retry RetryConfig
}

// NewRetryTransport wraps base with the same backoff policy RealHTTPClient uses.
// Only mount it in front of endpoints where a replayed request is harmless.
// A request whose body cannot be rewound is sent once.
func NewRetryTransport(base http.RoundTripper, retry RetryConfig) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if retry == (RetryConfig{}) {
		retry = DefaultRetryConfig
	}
	return &retryTransport{base: base, retry: retry}
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	policy := newExponentialBackOff(t.retry)
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		policy = &backoff.StopBackOff{}
	}

	var resp *http.Response
	first := true
	operation := func() error {
		attempt := req
		if !first {
			attempt = req.Clone(ctx)
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return backoff.Permanent(fmt.Errorf("failed to rewind request body: %w", err))
				}
				attempt.Body = body
			}
		}
		first = false

		r, err := t.base.RoundTrip(attempt)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("failed to perform request: %w", err)
		}

		if r.StatusCode == http.StatusTooManyRequests || r.StatusCode >= http.StatusInternalServerError {
			body, _ := io.ReadAll(io.LimitReader(r.Body, 256))
			if err := r.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
			}
			logger.Warn("retryable response, retrying with backoff",
				zap.String("url", req.URL.String()),
				zap.Int("status", r.StatusCode))
			return fmt.Errorf("server error %d: %s", r.StatusCode, truncate(body, 256))
		}

		resp = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func decodeResponse(body []byte, result interface{}) error {
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
