package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"linkedin-jobs-scraper/browser"
)

// ProgressFunc reports round progress (current round / total rounds). It is
// an observable side effect, not a functional dependency.
type ProgressFunc func(round, total int)

// PaginateOptions tunes one pagination run.
type PaginateOptions struct {
	Selectors       Selectors
	LoadMoreTimeout time.Duration
	SettleDelay     time.Duration
	Limiter         *rate.Limiter // optional pacing between rounds
	Progress        ProgressFunc  // optional
}

// Paginate grows the set of visible listing cards on an already-navigated
// page for up to maxPages rounds. Each round scrolls to the bottom, clicks
// the "load more" control if it shows up within the bounded wait (its
// absence is not an error), then pauses so asynchronously loaded content
// can settle.
//
// On a transport fault the round is not retried in place: the manager
// recycles the session, a fresh one is acquired and re-navigated to
// pageURL, and the loop resumes at the next round. Prior growth on the
// crashed session is lost — progress restarts from zero containers, a
// documented limitation. Two consecutive failed recoveries abandon the run.
//
// Returns the session that is current after the loop, which differs from
// sess when a recovery happened.
func Paginate(ctx context.Context, mgr *browser.Manager, sess browser.Session, pageURL string, maxPages int, opt PaginateOptions) (browser.Session, error) {
	lastCount := -1

	for round := 1; round <= maxPages; round++ {
		if opt.Limiter != nil {
			if err := opt.Limiter.Wait(ctx); err != nil {
				return sess, fmt.Errorf("pacing wait: %w", err)
			}
		}

		clicked, err := runRound(ctx, sess, opt)
		if err != nil {
			if !browser.IsTransport(err) {
				return sess, err
			}

			fresh, rerr := recoverSession(ctx, mgr, pageURL, opt.SettleDelay)
			if rerr != nil {
				// One immediate retry; a second failure in
				// succession abandons the query.
				fresh, rerr = recoverSession(ctx, mgr, pageURL, opt.SettleDelay)
				if rerr != nil {
					return sess, fmt.Errorf("session recovery failed twice in a row: %w", rerr)
				}
			}
			sess = fresh
			lastCount = 0
			if opt.Progress != nil {
				opt.Progress(round, maxPages)
			}
			continue
		}

		if opt.Progress != nil {
			opt.Progress(round, maxPages)
		}

		// When the control never appeared and the card count stopped
		// growing, the list is shorter than the round budget.
		cards, cerr := sess.Elements(ctx, opt.Selectors.JobCard)
		if cerr == nil {
			if !clicked && lastCount >= 0 && len(cards) == lastCount {
				break
			}
			lastCount = len(cards)
		}
	}

	return sess, nil
}

// runRound performs one scroll + optional load-more + settle cycle.
// Reports whether the load-more control was activated.
func runRound(ctx context.Context, sess browser.Session, opt PaginateOptions) (bool, error) {
	if err := sess.ScrollToBottom(ctx); err != nil {
		return false, err
	}

	clicked := false
	btn, err := sess.Find(ctx, opt.Selectors.LoadMore, opt.LoadMoreTimeout)
	switch {
	case err == nil:
		if err := btn.Click(ctx); err != nil {
			return false, err
		}
		clicked = true
	case errors.Is(err, browser.ErrElementNotFound):
		// Button may not be present on every page; not an error.
	default:
		return false, err
	}

	if opt.SettleDelay > 0 {
		time.Sleep(opt.SettleDelay)
	}
	return clicked, nil
}

// recoverSession discards the crashed session and brings a fresh one back
// onto the original search URL.
func recoverSession(ctx context.Context, mgr *browser.Manager, pageURL string, settle time.Duration) (browser.Session, error) {
	mgr.Recycle()

	fresh, err := mgr.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("relaunch session: %w", err)
	}
	if err := fresh.Navigate(ctx, pageURL); err != nil {
		return nil, fmt.Errorf("re-navigate after recovery: %w", err)
	}
	if settle > 0 {
		time.Sleep(settle)
	}
	return fresh, nil
}
