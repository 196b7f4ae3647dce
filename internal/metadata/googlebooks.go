// file: internal/metadata/googlebooks.go
// version: 2.0.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-f2a3b4c5d6e7

package metadata

import (
	"context"
	"net/url"
	"strings"
)

// DefaultGoogleBooksBaseURL is the public Volume API root.
const DefaultGoogleBooksBaseURL = "https://www.googleapis.com/books/v1"

// GoogleBooksClient fetches metadata from the Google Books Volume API.
// No API key is required for ISBN lookups (free tier, ~1000 req/day).
type GoogleBooksClient struct {
	http   *httpGetter
	apiKey string
}

// NewGoogleBooksClient creates a new Google Books API client.
func NewGoogleBooksClient(opts ClientOptions) *GoogleBooksClient {
	return &GoogleBooksClient{
		http:   newHTTPGetter(opts, DefaultGoogleBooksBaseURL),
		apiKey: strings.TrimSpace(opts.APIKey),
	}
}

// NewGoogleBooksClientWithBaseURL creates an unthrottled client with a custom base URL (for testing).
func NewGoogleBooksClientWithBaseURL(baseURL string) *GoogleBooksClient {
	return NewGoogleBooksClient(ClientOptions{BaseURL: baseURL})
}

// Name returns the display name for this metadata source.
func (c *GoogleBooksClient) Name() string {
	return "Google Books"
}

type googleBooksResponse struct {
	TotalItems int              `json:"totalItems"`
	Items      []googleBooksVol `json:"items"`
}

type googleBooksVol struct {
	VolumeInfo googleBooksVolumeInfo `json:"volumeInfo"`
}

type googleBooksVolumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"publishedDate"`
	Description   string   `json:"description"`
	PageCount     *int     `json:"pageCount"`
}

// Lookup queries volumes by ISBN and normalizes the first item.
func (c *GoogleBooksClient) Lookup(ctx context.Context, isbn string) (*BookMetadata, error) {
	q := url.Values{}
	q.Set("q", "isbn:"+isbn)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}

	var gbResp googleBooksResponse
	if _, err := c.http.getJSON(ctx, c.http.baseURL+"/volumes?"+q.Encode(), &gbResp); err != nil {
		return nil, err
	}
	if gbResp.TotalItems == 0 || len(gbResp.Items) == 0 {
		return nil, ErrNoMatch
	}

	vi := gbResp.Items[0].VolumeInfo
	meta := &BookMetadata{
		Title:         vi.Title,
		Authors:       vi.Authors,
		Publisher:     vi.Publisher,
		PublishedDate: vi.PublishedDate,
		Description:   vi.Description,
		PageCount:     vi.PageCount,
	}
	return normalize(meta, isbn, c.Name()), nil
}

// Fetch implements Provider. Transport failures are logged and reported as absent.
func (c *GoogleBooksClient) Fetch(ctx context.Context, isbn string) (*BookMetadata, bool) {
	return absorb(ctx, c.Name(), isbn, c.Lookup)
}

var _ Provider = (*GoogleBooksClient)(nil)
