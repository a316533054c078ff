// Package browser owns the single headless tab the crawler renders detail
// pages in. The session is a shared mutable resource: it navigates to one
// URL at a time and must only be driven sequentially.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Config controls browser launch and per-navigation behavior.
type Config struct {
	Headless bool
	// Settle is how long the page is left alone after the document is
	// ready, as a proxy for network quiescence.
	Settle time.Duration
	// NavTimeout bounds a single NavigateAndRender call.
	NavTimeout time.Duration
}

// Session wraps one browser tab for the duration of a run.
type Session struct {
	ctx     context.Context
	cancels []context.CancelFunc
	cfg     Config
}

// NewSession launches the browser and opens the tab. Close must be called
// when the run finishes.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-notifications", true),
		chromedp.Flag("disable-extensions", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	// Start the browser now so launch failures surface here, not on the
	// first navigation.
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return &Session{
		ctx:     tabCtx,
		cancels: []context.CancelFunc{cancelTab, cancelAlloc},
		cfg:     cfg,
	}, nil
}

// NavigateAndRender loads the URL, waits for the document plus the settling
// window, and returns the rendered HTML.
func (s *Session) NavigateAndRender(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	navCtx := s.ctx
	if s.cfg.NavTimeout > 0 {
		var cancel context.CancelFunc
		navCtx, cancel = context.WithTimeout(navCtx, s.cfg.NavTimeout)
		defer cancel()
	}

	var html string
	err := chromedp.Run(navCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(s.cfg.Settle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("navigate %s: %w", url, err)
	}
	return html, nil
}

// Close tears down the tab and the browser process.
func (s *Session) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}
