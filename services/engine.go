package services

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/time/rate"

	"linkedin-jobs-scraper/browser"
	"linkedin-jobs-scraper/config"
	"linkedin-jobs-scraper/models"
	"linkedin-jobs-scraper/scraper"
)

// ErrNoRecords marks a query that finished without yielding a single
// record. Reported as a warning; never halts the remaining queries.
var ErrNoRecords = errors.New("no listings found")

// Engine drives the build URL → paginate → extract → aggregate pipeline
// for a batch of queries against the one shared browser session.
type Engine struct {
	mgr       *browser.Manager
	cfg       config.Config
	selectors scraper.Selectors
	limiter   *rate.Limiter
}

func NewEngine(mgr *browser.Manager, cfg config.Config, sel scraper.Selectors) *Engine {
	return &Engine{
		mgr:       mgr,
		cfg:       cfg,
		selectors: sel,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateBurst),
	}
}

// Run processes queries strictly sequentially, in input order. The session
// handle is shared and mutable, so there is deliberately no concurrency
// here; correctness depends on disciplined sequential reuse.
//
// A SessionInitError on the very first acquire is fatal and returned.
// Every later failure is absorbed at query scope: the result carries the
// error and processing continues with the next query.
func (e *Engine) Run(ctx context.Context, queries []models.SearchQuery) ([]models.QueryResult, error) {
	results := make([]models.QueryResult, len(queries))

	if _, err := e.mgr.Acquire(ctx); err != nil {
		return nil, err
	}

	for i, q := range queries {
		log.Printf("[%s] ▶ starting", q.Keywords)

		records, err := e.ScrapeQuery(ctx, q)
		switch {
		case err != nil:
			log.Printf("[%s] ✗ %v", q.Keywords, err)
			if browser.IsTransport(err) {
				// Drop the dead session so the next query
				// starts against a fresh launch instead of
				// the cached corpse.
				e.mgr.Recycle()
			}
		case len(records) == 0:
			err = ErrNoRecords
			log.Printf("[%s] ⚠ no jobs found", q.Keywords)
		default:
			log.Printf("[%s] ✓ %d jobs collected", q.Keywords, len(records))
		}

		results[i] = models.QueryResult{Query: q.Keywords, Index: i, Records: records, Err: err}

		if i < len(queries)-1 {
			time.Sleep(config.RandomDelay())
		}
	}

	return results, nil
}

// ScrapeQuery runs the full pipeline for one query: navigate to the built
// search URL, grow the page through the pagination controller, then
// extract one record per listing card tagged with the query's keywords.
func (e *Engine) ScrapeQuery(ctx context.Context, q models.SearchQuery) ([]models.ListingRecord, error) {
	sess, err := e.mgr.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	pageURL := scraper.BuildSearchURL(q)
	if err := sess.Navigate(ctx, pageURL); err != nil {
		return nil, err
	}
	if e.cfg.PageLoadDelay > 0 {
		time.Sleep(e.cfg.PageLoadDelay)
	}

	sess, err = scraper.Paginate(ctx, e.mgr, sess, pageURL, q.MaxPages, scraper.PaginateOptions{
		Selectors:       e.selectors,
		LoadMoreTimeout: e.cfg.LoadMoreTimeout,
		SettleDelay:     e.cfg.SettleDelay,
		Limiter:         e.limiter,
		Progress: func(round, total int) {
			log.Printf("[%s] round %d/%d", q.Keywords, round, total)
		},
	})
	if err != nil {
		return nil, err
	}

	return scraper.ExtractRecords(ctx, sess, e.selectors, q.Keywords)
}
