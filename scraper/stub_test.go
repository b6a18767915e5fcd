package scraper

import (
	"context"
	"errors"
	"time"

	"linkedin-jobs-scraper/browser"
)

// stubElement is an in-memory DOM node for tests.
type stubElement struct {
	text string
	attr map[string]string
	kids map[string]*stubElement

	clickErr error
	onClick  func()
}

func (e *stubElement) Find(ctx context.Context, selector string) (browser.Element, error) {
	if kid, ok := e.kids[selector]; ok {
		return kid, nil
	}
	return nil, browser.ErrElementNotFound
}

func (e *stubElement) Text(ctx context.Context) (string, error) {
	return e.text, nil
}

func (e *stubElement) Attr(ctx context.Context, name string) (string, error) {
	return e.attr[name], nil
}

func (e *stubElement) Click(ctx context.Context) error {
	if e.clickErr != nil {
		return e.clickErr
	}
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

// stubSession simulates a results page that grows by one batch of cards
// per load-more activation.
type stubSession struct {
	sel Selectors

	cards   []*stubElement
	pending [][]*stubElement

	navigations  []string
	scrolls      int
	failScrollAt int // fail the nth ScrollToBottom with a transport fault
	closed       bool
}

func newStubSession(sel Selectors, initial []*stubElement, pending ...[]*stubElement) *stubSession {
	return &stubSession{sel: sel, cards: initial, pending: pending}
}

func (s *stubSession) Navigate(ctx context.Context, url string) error {
	s.navigations = append(s.navigations, url)
	return nil
}

func (s *stubSession) ScrollToBottom(ctx context.Context) error {
	s.scrolls++
	if s.failScrollAt > 0 && s.scrolls == s.failScrollAt {
		return &browser.TransportFault{Op: "scroll", Err: errors.New("connection dropped")}
	}
	return nil
}

func (s *stubSession) Find(ctx context.Context, selector string, timeout time.Duration) (browser.Element, error) {
	if selector == s.sel.LoadMore && len(s.pending) > 0 {
		return &stubElement{onClick: func() {
			s.cards = append(s.cards, s.pending[0]...)
			s.pending = s.pending[1:]
		}}, nil
	}
	return nil, browser.ErrElementNotFound
}

func (s *stubSession) Elements(ctx context.Context, selector string) ([]browser.Element, error) {
	out := make([]browser.Element, len(s.cards))
	for i, c := range s.cards {
		out[i] = c
	}
	return out, nil
}

func (s *stubSession) Close() {
	s.closed = true
}

// makeCard builds a listing-card stub. Empty href drops the title anchor
// entirely; empty company/location drop those child elements.
func makeCard(sel Selectors, title, href, company, location string) *stubElement {
	card := &stubElement{kids: map[string]*stubElement{}}
	if href != "" {
		card.kids[sel.CardLink] = &stubElement{
			text: title,
			attr: map[string]string{"href": href},
		}
	}
	if company != "" {
		card.kids[sel.Company] = &stubElement{text: company}
	}
	if location != "" {
		card.kids[sel.Location] = &stubElement{text: location}
	}
	return card
}
