package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/caiogeraldes/wttr/internal/observability"
)

// DefaultURL is the wttr.in JSON endpoint for the caller's location.
const DefaultURL = "https://wttr.in/?format=j1"

const userAgent = "wttr-cli/1.0"

// WeatherClient fetches the raw provider payload.
type WeatherClient interface {
	FetchRaw(ctx context.Context) ([]byte, error)
}

var (
	// ErrFetchFailed covers transport errors, timeouts and non-2xx responses.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrInvalidURL is returned by NewWttrClient for an unusable endpoint.
	ErrInvalidURL = errors.New("invalid provider URL")
)

// StatusError carries the HTTP status of a failed upstream response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

type WttrClient struct {
	apiURL  string
	timeout time.Duration
	client  *http.Client
}

// NewWttrClient creates a client for apiURL. A zero timeout leaves the
// transport default in place.
func NewWttrClient(apiURL string, timeout time.Duration) (*WttrClient, error) {
	if apiURL == "" {
		apiURL = DefaultURL
	}
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}

	return &WttrClient{
		apiURL:  apiURL,
		timeout: timeout,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// FetchRaw performs a single GET against the provider and returns the body.
func (c *WttrClient) FetchRaw(ctx context.Context) ([]byte, error) {
	start := time.Now()

	req, err := c.buildRequest(ctx)
	if err != nil {
		observability.WeatherAPICallsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		observability.WeatherAPICallsTotal.WithLabelValues("error").Inc()
		observability.WeatherAPIDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())

		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: request timeout: %w", ErrFetchFailed, err)
		}
		return nil, fmt.Errorf("%w: http request failed: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	status := statusLabel(resp.StatusCode)
	observability.WeatherAPICallsTotal.WithLabelValues(status).Inc()
	observability.WeatherAPIDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, &StatusError{StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %w", ErrFetchFailed, err)
	}
	return body, nil
}

func (c *WttrClient) buildRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if id := observability.InvocationID(ctx); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
	return req, nil
}

func statusLabel(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "success"
	}
	if statusCode == 429 {
		return "rate_limited"
	}
	if statusCode >= 400 && statusCode < 500 {
		return "client_error"
	}
	if statusCode >= 500 {
		return "server_error"
	}
	return "error"
}
