package scraper

import (
	"context"
	"strings"

	"linkedin-jobs-scraper/browser"
	"linkedin-jobs-scraper/models"
)

// ExtractRecords walks the listing cards currently on the page and emits
// one record per card, in document order. The title anchor supplies both
// url and title; a card whose anchor cannot be located (or carries no
// href) yields no record, since the URL is the record's only identifying
// key. Company and location are looked up independently and fall back to
// the sentinel on their own — a missing secondary field never costs the
// record the fields that did extract cleanly.
func ExtractRecords(ctx context.Context, sess browser.Session, sel Selectors, sourceQuery string) ([]models.ListingRecord, error) {
	cards, err := sess.Elements(ctx, sel.JobCard)
	if err != nil {
		return nil, err
	}

	records := make([]models.ListingRecord, 0, len(cards))
	for _, card := range cards {
		rec, ok := extractCard(ctx, card, sel)
		if !ok {
			continue
		}
		rec.SourceQuery = sourceQuery
		records = append(records, rec)
	}
	return records, nil
}

func extractCard(ctx context.Context, card browser.Element, sel Selectors) (models.ListingRecord, bool) {
	var rec models.ListingRecord

	link, err := card.Find(ctx, sel.CardLink)
	if err != nil {
		return rec, false
	}
	href, err := link.Attr(ctx, "href")
	if err != nil || strings.TrimSpace(href) == "" {
		return rec, false
	}
	rec.URL = strings.TrimSpace(href)

	if title, err := link.Text(ctx); err == nil {
		rec.Title = strings.TrimSpace(title)
	}

	rec.Company = fieldOrSentinel(ctx, card, sel.Company)
	rec.Location = fieldOrSentinel(ctx, card, sel.Location)
	return rec, true
}

// fieldOrSentinel resolves one secondary field, substituting the fixed
// sentinel when the locator fails for any reason.
func fieldOrSentinel(ctx context.Context, card browser.Element, selector string) string {
	el, err := card.Find(ctx, selector)
	if err != nil {
		return models.FieldUnavailable
	}
	text, err := el.Text(ctx)
	if err != nil || strings.TrimSpace(text) == "" {
		return models.FieldUnavailable
	}
	return strings.TrimSpace(text)
}
