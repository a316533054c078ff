// Package extract pulls genre/summary metadata out of rendered detail
// pages. It is a pure transformation: no network and no storage access.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/TodayWantLook/Crawler/internal/domain"
)

// Structural selectors into each service's rendered detail page.
const (
	naverGenreSelector   = "#content > div > div > div > div > div"
	naverSummarySelector = "#content > div > div > div"

	kakaoGenreSelector    = "#root > main > div > div > div > div > div > div > div:nth-child(3) > div"
	kakaoSummarySelector  = "#root > main > div > div > div > div > div > div > div:nth-child(2) > div"
	kakaoBackdropSelector = "#root > main > div > div > picture"
)

// Extract returns the supplementary metadata found on a rendered detail
// page. A service with no extraction rule yields (nil, nil): no enrichment
// available, not an error.
func Extract(html string, service domain.Service) (*domain.Detail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse detail page: %w", err)
	}

	switch service {
	case domain.ServiceNaver:
		det := &domain.Detail{
			Genre: splitTags(doc.Find(naverGenreSelector).Find("a").Text()),
		}
		if p := doc.Find(naverSummarySelector).Find("p"); p.Length() > 0 {
			summary := p.Text()
			det.Summary = &summary
		}
		return det, nil

	case domain.ServiceKakao:
		det := &domain.Detail{
			Genre: splitTags(doc.Find(kakaoGenreSelector).Find("a").Text()),
		}
		if p := doc.Find(kakaoSummarySelector).Find("p"); p.Length() > 0 {
			summary := p.Text()
			det.Summary = &summary
		}
		if src, ok := doc.Find(kakaoBackdropSelector).Find("img").Attr("src"); ok {
			det.BackdropImg = &src
		}
		return det, nil
	}

	return nil, nil
}

// splitTags turns a "#action#drama" tag string into its tags. The delimiter
// precedes every real tag, so the first fragment is always non-tag
// boilerplate and is dropped.
func splitTags(text string) []string {
	parts := strings.Split(text, "#")
	if len(parts) <= 1 {
		return nil
	}
	return parts[1:]
}
