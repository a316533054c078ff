// Package listing talks to the upstream webtoon listing API.
package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/TodayWantLook/Crawler/internal/domain"
	"github.com/TodayWantLook/Crawler/pkg/httpclient"
)

// Result is one fetched listing page. Degraded marks a non-success upstream
// status: the page yielded nothing, but the caller can tell that apart from
// a genuinely empty category.
type Result struct {
	Records    []domain.Listing
	Degraded   bool
	StatusCode int
}

// Client fetches one listing page per call. Pagination is the caller's
// concern.
type Client struct {
	http    httpclient.Client
	baseURL string
}

// NewClient builds a listing client for the given API base URL.
func NewClient(http httpclient.Client, baseURL string) *Client {
	return &Client{http: http, baseURL: baseURL}
}

type listingPage struct {
	Webtoons []domain.Listing `json:"webtoons"`
}

// Fetch requests a single page for the given service and update-day
// category. A non-200 status returns a degraded empty result; transport
// failures return an error.
func (c *Client) Fetch(ctx context.Context, page int, service domain.Service, day domain.UpdateDay) (Result, error) {
	if page < 1 {
		return Result{}, fmt.Errorf("page must be positive, got %d", page)
	}

	query := map[string]string{
		"page":      strconv.Itoa(page),
		"service":   string(service),
		"updateDay": string(day),
	}

	resp, err := c.http.Get(ctx, c.baseURL, query)
	if err != nil {
		return Result{}, fmt.Errorf("fetch listing page: %w", err)
	}

	if resp.StatusCode() != 200 {
		return Result{Degraded: true, StatusCode: resp.StatusCode()}, nil
	}

	var body listingPage
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return Result{}, fmt.Errorf("decode listing page: %w", err)
	}

	return Result{Records: body.Webtoons, StatusCode: resp.StatusCode()}, nil
}
