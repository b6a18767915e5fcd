package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// ChromeOptions configures the launched Chrome process.
type ChromeOptions struct {
	Headless  bool
	UserAgent string
}

// NewChromeLauncher returns a LaunchFunc that starts a Chrome process
// configured for unattended operation: no visible window, no sandbox,
// GPU acceleration disabled.
func NewChromeLauncher(opt ChromeOptions) LaunchFunc {
	return func(parent context.Context) (Session, error) {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", opt.Headless),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("disable-blink-features", "AutomationControlled"),
			chromedp.UserAgent(opt.UserAgent),
			chromedp.WindowSize(1440, 900),
		)

		allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
		tabCtx, cancelTab := chromedp.NewContext(allocCtx)

		// Run an empty action so the process starts now and launch
		// failures surface here instead of on first navigation.
		if err := chromedp.Run(tabCtx); err != nil {
			cancelTab()
			cancelAlloc()
			return nil, err
		}

		return &chromeSession{
			ctx:         tabCtx,
			cancelTab:   cancelTab,
			cancelAlloc: cancelAlloc,
		}, nil
	}
}

type chromeSession struct {
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// run executes actions on the session's chromedp context while honoring
// the caller's ctx: cancelling ctx aborts the in-flight call without
// tearing down the session for good.
func (s *chromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

// fault classifies a failed call: caller cancellation is surfaced as the
// caller's own context error, everything else on a live-or-dead session
// is a TransportFault.
func (s *chromeSession) fault(op string, ctx context.Context, err error) error {
	if ctx.Err() != nil && s.ctx.Err() == nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
	return &TransportFault{Op: op, Err: err}
}

func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	if err := s.run(ctx, chromedp.Navigate(url)); err != nil {
		return s.fault("navigate", ctx, err)
	}
	return nil
}

func (s *chromeSession) ScrollToBottom(ctx context.Context) error {
	err := s.run(ctx,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
	)
	if err != nil {
		return s.fault("scroll", ctx, err)
	}
	return nil
}

func (s *chromeSession) Find(ctx context.Context, selector string, timeout time.Duration) (Element, error) {
	waitCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var nodes []*cdp.Node
	err := chromedp.Run(waitCtx, chromedp.Nodes(selector, &nodes, chromedp.ByQuery))
	if err != nil {
		if s.ctx.Err() != nil {
			return nil, &TransportFault{Op: "find", Err: s.ctx.Err()}
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("find: %w", ctx.Err())
		}
		if errors.Is(err, context.DeadlineExceeded) {
			// The bounded wait expired with the session still alive.
			return nil, ErrElementNotFound
		}
		return nil, &TransportFault{Op: "find", Err: err}
	}
	if len(nodes) == 0 {
		return nil, ErrElementNotFound
	}
	return &chromeElement{sess: s, node: nodes[0]}, nil
}

func (s *chromeSession) Elements(ctx context.Context, selector string) ([]Element, error) {
	var nodes []*cdp.Node
	err := s.run(ctx,
		chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)),
	)
	if err != nil {
		return nil, s.fault("elements", ctx, err)
	}

	out := make([]Element, len(nodes))
	for i, n := range nodes {
		out[i] = &chromeElement{sess: s, node: n}
	}
	return out, nil
}

func (s *chromeSession) Close() {
	s.cancelTab()
	s.cancelAlloc()
}

type chromeElement struct {
	sess *chromeSession
	node *cdp.Node
}

func (e *chromeElement) Find(ctx context.Context, selector string) (Element, error) {
	var nodes []*cdp.Node
	err := e.sess.run(ctx,
		chromedp.Nodes(selector, &nodes,
			chromedp.ByQuery, chromedp.FromNode(e.node), chromedp.AtLeast(0)),
	)
	if err != nil {
		return nil, e.sess.fault("find", ctx, err)
	}
	if len(nodes) == 0 {
		return nil, ErrElementNotFound
	}
	return &chromeElement{sess: e.sess, node: nodes[0]}, nil
}

func (e *chromeElement) Text(ctx context.Context) (string, error) {
	var text string
	err := e.sess.run(ctx,
		chromedp.Text([]cdp.NodeID{e.node.NodeID}, &text, chromedp.ByNodeID),
	)
	if err != nil {
		return "", e.sess.fault("text", ctx, err)
	}
	return text, nil
}

func (e *chromeElement) Attr(ctx context.Context, name string) (string, error) {
	var value string
	var ok bool
	err := e.sess.run(ctx,
		chromedp.AttributeValue([]cdp.NodeID{e.node.NodeID}, name, &value, &ok, chromedp.ByNodeID),
	)
	if err != nil {
		return "", e.sess.fault("attr", ctx, err)
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

func (e *chromeElement) Click(ctx context.Context) error {
	if err := e.sess.run(ctx, chromedp.MouseClickNode(e.node)); err != nil {
		return e.sess.fault("click", ctx, err)
	}
	return nil
}
