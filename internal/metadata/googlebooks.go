// Package metadata wraps the external book search API. It returns raw
// candidate records; everything downstream (series grouping, gap
// finding, library import) is pure computation over those records.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/hridaya423/bookify/pkg/models"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

// BookSearcher is the external search collaborator
type BookSearcher interface {
	Search(ctx context.Context, query string) ([]models.RawBookRecord, error)
	SearchByAuthor(ctx context.Context, author string) ([]models.RawBookRecord, error)
}

// GoogleBooksClient fetches candidates from the Google Books Volume
// API. No API key is required for basic searches.
type GoogleBooksClient struct {
	httpClient *http.Client
	baseURL    string
	maxResults int
	limiter    *rate.Limiter
}

// NewGoogleBooksClient creates a rate-limited Google Books client.
// ratePerSec <= 0 disables client-side throttling.
func NewGoogleBooksClient(baseURL string, maxResults int, ratePerSec float64) *GoogleBooksClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if maxResults <= 0 {
		maxResults = 20
	}
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}
	return &GoogleBooksClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxResults: maxResults,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

type googleBooksResponse struct {
	TotalItems int              `json:"totalItems"`
	Items      []googleBooksVol `json:"items"`
}

type googleBooksVol struct {
	VolumeInfo googleBooksVolumeInfo `json:"volumeInfo"`
}

type googleBooksVolumeInfo struct {
	Title         string                 `json:"title"`
	Authors       []string               `json:"authors"`
	PublishedDate string                 `json:"publishedDate"`
	PageCount     int                    `json:"pageCount"`
	Categories    []string               `json:"categories"`
	Description   string                 `json:"description"`
	ImageLinks    *googleBooksImageLinks `json:"imageLinks"`
}

type googleBooksImageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}

// Search runs a free-text volume search
func (c *GoogleBooksClient) Search(ctx context.Context, query string) ([]models.RawBookRecord, error) {
	return c.search(ctx, url.QueryEscape(query))
}

// SearchByAuthor searches volumes by a single author
func (c *GoogleBooksClient) SearchByAuthor(ctx context.Context, author string) ([]models.RawBookRecord, error) {
	return c.search(ctx, url.QueryEscape(fmt.Sprintf("inauthor:%s", author)))
}

func (c *GoogleBooksClient) search(ctx context.Context, escapedQuery string) ([]models.RawBookRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	searchURL := fmt.Sprintf("%s/volumes?q=%s&maxResults=%d", c.baseURL, escapedQuery, c.maxResults)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build book search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if typed := models.ClassifyUpstreamStatus(resp.StatusCode); typed != nil {
		return nil, fmt.Errorf("%w: book search returned status %d", typed, resp.StatusCode)
	}

	var gbResp googleBooksResponse
	if err := json.NewDecoder(resp.Body).Decode(&gbResp); err != nil {
		return nil, fmt.Errorf("decode book search response: %w", err)
	}

	records := make([]models.RawBookRecord, 0, len(gbResp.Items))
	for _, item := range gbResp.Items {
		vi := item.VolumeInfo
		rec := models.RawBookRecord{
			Title:         vi.Title,
			Authors:       vi.Authors,
			PublishedDate: vi.PublishedDate,
			Categories:    vi.Categories,
			Description:   vi.Description,
		}
		if vi.PageCount > 0 {
			pages := vi.PageCount
			rec.PageCount = &pages
		}
		if vi.ImageLinks != nil {
			rec.ThumbnailURL = vi.ImageLinks.Thumbnail
			if rec.ThumbnailURL == "" {
				rec.ThumbnailURL = vi.ImageLinks.SmallThumbnail
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
