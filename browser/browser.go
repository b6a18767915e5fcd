// Package browser defines the automation capability the scraping engine
// consumes — launch a session, navigate, scroll, locate elements, click,
// read text and attributes — and provides a chromedp-backed implementation.
// Any backend implementing Session and Element is substitutable, which is
// what the tests rely on.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrElementNotFound reports that a locator matched nothing within its
// bounded wait. It is always recoverable at field or record scope.
var ErrElementNotFound = errors.New("element not found")

// SessionInitError means the browser or its driver could not be started.
// Fatal for the whole run.
type SessionInitError struct {
	Err error
}

func (e *SessionInitError) Error() string {
	return fmt.Sprintf("browser session init: %v", e.Err)
}

func (e *SessionInitError) Unwrap() error { return e.Err }

// TransportFault is a mid-session browser or network failure. The
// pagination controller recovers it by recycling the session and
// re-navigating.
type TransportFault struct {
	Op  string
	Err error
}

func (e *TransportFault) Error() string {
	return fmt.Sprintf("browser transport fault during %s: %v", e.Op, e.Err)
}

func (e *TransportFault) Unwrap() error { return e.Err }

// IsTransport reports whether err carries a TransportFault anywhere in its
// chain.
func IsTransport(err error) bool {
	var tf *TransportFault
	return errors.As(err, &tf)
}

// Element is an opaque handle to a DOM node inside a live session.
type Element interface {
	// Find locates a descendant of this element. Returns
	// ErrElementNotFound when nothing matches.
	Find(ctx context.Context, selector string) (Element, error)
	// Text returns the element's visible text content.
	Text(ctx context.Context) (string, error)
	// Attr returns the named attribute, or "" when absent.
	Attr(ctx context.Context, name string) (string, error)
	// Click activates the element.
	Click(ctx context.Context) error
}

// Session is one live browser instance.
type Session interface {
	// Navigate loads the given URL in the session's tab.
	Navigate(ctx context.Context, url string) error
	// ScrollToBottom scrolls the viewport to the bottom of the document.
	ScrollToBottom(ctx context.Context) error
	// Find waits up to timeout for a visible element matching selector.
	// Expiry of the wait yields ErrElementNotFound, not a TransportFault.
	Find(ctx context.Context, selector string, timeout time.Duration) (Element, error)
	// Elements returns all current matches in document order without
	// waiting. An empty page yields an empty slice, not an error.
	Elements(ctx context.Context, selector string) ([]Element, error)
	// Close releases the OS resources held by the session.
	Close()
}
