package crawler

import (
	"context"

	"github.com/TodayWantLook/Crawler/internal/domain"
	"github.com/TodayWantLook/Crawler/internal/listing"
)

// ListingFetcher retrieves one page of listing records.
type ListingFetcher interface {
	Fetch(ctx context.Context, page int, service domain.Service, day domain.UpdateDay) (listing.Result, error)
}

// Renderer loads a URL in the shared browser tab and returns the rendered
// HTML once the page has settled. It can only be at one location at a time,
// which is why items are processed strictly in sequence.
type Renderer interface {
	NavigateAndRender(ctx context.Context, url string) (string, error)
}

// ExtractFunc extracts supplementary detail-page metadata. A nil result
// means no extraction rule exists for the service.
type ExtractFunc func(html string, service domain.Service) (*domain.Detail, error)
