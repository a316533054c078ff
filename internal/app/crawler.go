package app

import (
	"context"
	"fmt"
	"time"

	"github.com/TodayWantLook/Crawler/internal/browser"
	"github.com/TodayWantLook/Crawler/internal/config"
	"github.com/TodayWantLook/Crawler/internal/crawler"
	"github.com/TodayWantLook/Crawler/internal/domain"
	"github.com/TodayWantLook/Crawler/internal/listing"
	"github.com/TodayWantLook/Crawler/internal/logger"
	"github.com/TodayWantLook/Crawler/internal/storage"
	"github.com/TodayWantLook/Crawler/pkg/httpclient"
	"github.com/TodayWantLook/Crawler/pkg/publishers"
)

// Crawler is the crawler runtime. It owns the store, the browser session,
// and the publisher fanout, and drives one reconciliation run at a time
// through the crawl service.
type Crawler struct {
	cfg     *config.Config
	service *crawler.Service
	session *browser.Session
	store   storage.Store
	fanout  *publishers.Fanout
	log     logger.Logger
}

// NewCrawler builds the crawler runtime from config. Close must be called
// when the runtime is no longer needed.
func NewCrawler(ctx context.Context, cfg *config.Config, log logger.Logger) (*Crawler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	fanout, err := buildFanout(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":       cfg.StorageType,
		"database":   cfg.MongoDatabase,
		"collection": cfg.MongoCollection,
		"bbolt_path": cfg.BBoltPath,
	})

	session, err := browser.NewSession(ctx, browser.Config{
		Headless:   cfg.BrowserHeadless,
		Settle:     cfg.BrowserSettle,
		NavTimeout: cfg.BrowserNavTimeout,
	})
	if err != nil {
		closeStore(ctx, store, log)
		return nil, fmt.Errorf("launch browser session: %w", err)
	}

	listingClient := listing.NewClient(httpclient.NewRestyClient(cfg.HTTPTimeout), cfg.ListingBaseURL)
	service := crawler.NewService(listingClient, session, store, fanout, log)

	return &Crawler{
		cfg:     cfg,
		service: service,
		session: session,
		store:   store,
		fanout:  fanout,
		log:     log,
	}, nil
}

// buildFanout constructs the publisher fanout when a publishers file is
// configured. Publishing is optional; no file means no fanout.
func buildFanout(ctx context.Context, cfg *config.Config, log logger.Logger) (*publishers.Fanout, error) {
	if cfg.PublishersFile == "" {
		return nil, nil
	}

	reg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabled := reg.Enabled()
	if len(enabled) == 0 {
		log.WarnObj("publishers file has no enabled publishers", "publishers_file", cfg.PublishersFile)
		return nil, nil
	}

	pubs, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}

	summaries := make([]map[string]string, 0, len(enabled))
	for _, pubCfg := range enabled {
		summaries = append(summaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(summaries),
		"publishers": summaries,
	})

	return publishers.NewFanout(pubs), nil
}

// Run executes one reconciliation pass over a single listing page.
func (c *Crawler) Run(ctx context.Context, page int, serviceName, dayName string) error {
	if c == nil || c.service == nil {
		return fmt.Errorf("crawler is not initialized")
	}

	service, err := domain.ParseService(serviceName)
	if err != nil {
		return err
	}
	day, err := domain.ParseUpdateDay(dayName)
	if err != nil {
		return err
	}

	start := time.Now()
	c.log.InfoObj("crawl started", "crawl_meta", map[string]any{
		"page":       page,
		"service":    string(service),
		"update_day": string(day),
		"started_at": start.UTC(),
	})

	sum, err := c.service.Run(ctx, page, service, day)

	meta := map[string]any{
		"page":       page,
		"service":    string(service),
		"update_day": string(day),
		"skipped":    sum.Skipped,
		"inserted":   sum.Inserted,
		"updated":    sum.Updated,
		"failed":     sum.Failed,
		"degraded":   sum.Degraded,
		"elapsed_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		c.log.ErrorObj("crawl aborted", "crawl_meta", meta)
		return err
	}

	c.log.InfoObj("crawl completed", "crawl_meta", meta)
	return nil
}

// Close tears down the browser session and the storage backend.
func (c *Crawler) Close(ctx context.Context) {
	if c == nil {
		return
	}
	if c.session != nil {
		c.session.Close()
	}
	closeStore(ctx, c.store, c.log)
}

func closeStore(ctx context.Context, store storage.Store, log logger.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(ctx); err != nil {
		log.ErrorObj("storage close failed", "error", err.Error())
	}
}
