// Package crawler holds the reconciliation engine: it combines the listing
// API, the rendered detail page, and any previously stored document into
// one canonical media document per title.
package crawler

import (
	"context"
	"fmt"

	"github.com/TodayWantLook/Crawler/internal/domain"
	"github.com/TodayWantLook/Crawler/internal/extract"
	"github.com/TodayWantLook/Crawler/internal/logger"
	"github.com/TodayWantLook/Crawler/internal/merge"
	"github.com/TodayWantLook/Crawler/internal/storage"
	"github.com/TodayWantLook/Crawler/pkg/publishers"
)

// Summary reports the terminal outcome of every listing item in a run.
type Summary struct {
	Skipped  int
	Inserted int
	Updated  int
	Failed   int
	// Degraded is set when the listing API answered with a non-success
	// status and the run had nothing to process.
	Degraded bool
}

// Service is the reconciliation engine. It is the only component that
// touches more than one collaborator and the locus of the merge invariants.
type Service struct {
	listing ListingFetcher
	browser Renderer
	extract ExtractFunc
	store   storage.Store
	fanout  *publishers.Fanout
	log     logger.Logger
}

// NewService wires the engine with its collaborators. fanout may be nil
// when event publishing is disabled.
func NewService(lf ListingFetcher, browser Renderer, store storage.Store, fanout *publishers.Fanout, log logger.Logger) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{
		listing: lf,
		browser: browser,
		extract: extract.Extract,
		store:   store,
		fanout:  fanout,
		log:     log,
	}
}

// Run processes one listing page. Items are handled strictly one at a time:
// the shared browser tab can only be at one location, and reusing it across
// the run amortizes the launch cost. Adult-flagged records are skipped
// before any store or browser access. A navigation or store failure aborts
// the run; already persisted items stay persisted.
func (s *Service) Run(ctx context.Context, page int, service domain.Service, day domain.UpdateDay) (Summary, error) {
	var sum Summary

	res, err := s.listing.Fetch(ctx, page, service, day)
	if err != nil {
		return sum, fmt.Errorf("listing fetch: %w", err)
	}
	if res.Degraded {
		sum.Degraded = true
		s.log.WarnObj("listing upstream degraded", "listing_status", map[string]any{
			"status_code": res.StatusCode,
			"service":     string(service),
			"update_day":  string(day),
			"page":        page,
		})
		return sum, nil
	}

	for _, rec := range res.Records {
		if rec.Additional.Adult {
			sum.Skipped++
			continue
		}

		if err := s.reconcile(ctx, rec, &sum); err != nil {
			sum.Failed++
			return sum, fmt.Errorf("reconcile %q: %w", rec.Title, err)
		}
	}

	return sum, nil
}

// reconcile runs the per-item pipeline: normalize → navigate → lookup →
// base build → detail merge → persist.
func (s *Service) reconcile(ctx context.Context, rec domain.Listing, sum *Summary) error {
	url := normalizeDetailURL(rec.Service, rec.URL)

	html, err := s.browser.NavigateAndRender(ctx, url)
	if err != nil {
		return fmt.Errorf("render detail page: %w", err)
	}

	stored, err := s.store.FindByTitle(ctx, domain.TypeWebtoon, rec.Title)
	if err != nil {
		return fmt.Errorf("lookup stored document: %w", err)
	}

	doc := buildBase(stored, rec, url)

	det, err := s.extract(html, domain.Service(rec.Service))
	if err != nil {
		return fmt.Errorf("extract detail: %w", err)
	}
	applyDetail(&doc, det)

	action := "inserted"
	if stored != nil {
		action = "updated"
		if err := s.store.UpdateByWebtoonID(ctx, doc.WebtoonID, &doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		sum.Updated++
	} else {
		if err := s.store.Insert(ctx, &doc); err != nil {
			return fmt.Errorf("insert document: %w", err)
		}
		sum.Inserted++
	}

	s.publish(ctx, rec.Service, action, doc)
	return nil
}

// buildBase produces the document the detail merge applies to. With a
// stored document the stored fields are the base, but the listing still
// contributes its service's URL, the service name, and update days so that
// a title seen through several services converges to one document. Without
// one, the skeleton is seeded from the listing record.
func buildBase(stored *domain.Media, rec domain.Listing, url string) domain.Media {
	if stored != nil {
		doc := *stored
		doc.URL = merge.PutURL(cloneURLs(doc.URL), rec.Service, url)
		doc.Services = merge.Strings(doc.Services, []string{rec.Service})
		doc.UpdateDays = merge.Strings(doc.UpdateDays, rec.UpdateDays)
		return doc
	}

	return domain.Media{
		Type:       domain.TypeWebtoon,
		WebtoonID:  rec.WebtoonID,
		Title:      rec.Title,
		Summary:    "",
		Genre:      []string{},
		Author:     rec.Author,
		URL:        merge.PutURL(nil, rec.Service, url),
		Img:        rec.Img,
		Services:   []string{rec.Service},
		UpdateDays: merge.Dedup(rec.UpdateDays),
		Rate:       0,
		Rates:      []domain.Rate{},
		Additional: rec.Additional,
	}
}

// applyDetail folds extracted fields into the document: genre appends and
// deduplicates, summary and backdrop overwrite only when present.
func applyDetail(doc *domain.Media, det *domain.Detail) {
	if det == nil {
		return
	}
	doc.Genre = merge.Strings(doc.Genre, det.Genre)
	doc.Summary = merge.String(doc.Summary, det.Summary)
	doc.BackdropImg = merge.String(doc.BackdropImg, det.BackdropImg)
}

// publish fans the persisted document out to configured sinks. Delivery is
// best-effort: failures are logged, never fatal to the run.
func (s *Service) publish(ctx context.Context, service, action string, doc domain.Media) {
	if s.fanout == nil || s.fanout.Size() == 0 {
		return
	}
	evt := publishers.NewEvent(service, action, doc)
	if _, err := s.fanout.Publish(ctx, evt); err != nil {
		s.log.WarnObj("media event publish failed", "publish_error", map[string]any{
			"title":  doc.Title,
			"action": action,
			"error":  err.Error(),
		})
	}
}

func cloneURLs(urls map[string]string) map[string]string {
	out := make(map[string]string, len(urls)+1)
	for k, v := range urls {
		out[k] = v
	}
	return out
}
