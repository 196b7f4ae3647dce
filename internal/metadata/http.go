// file: internal/metadata/http.go
// version: 1.0.0
// guid: 3e7a1c95-d2b8-4f60-a4e1-6c0b9d8f2a37

package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single provider request when none is configured.
const DefaultTimeout = 15 * time.Second

// ClientOptions configures a provider client.
type ClientOptions struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RateLimit is requests per second; zero or less disables limiting.
	RateLimit float64
}

// httpGetter issues rate-limited JSON GETs against one base URL.
type httpGetter struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

func newHTTPGetter(opts ClientOptions, defaultBaseURL string) *httpGetter {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	return &httpGetter{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// getJSON decodes the body of a 200 response into out. It returns the
// status code alongside any error so callers can treat 404 as a miss.
func (g *httpGetter) getJSON(ctx context.Context, endpoint string, out any) (int, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: rate limiter: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("%w: %s returned status %d", ErrTransport, endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}
	return resp.StatusCode, nil
}
