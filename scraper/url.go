// Package scraper implements the scraping engine: search URL construction,
// the load-more pagination loop with session recovery, and per-card record
// extraction. It talks to the page exclusively through the browser package's
// capability interface.
package scraper

import (
	"net/url"

	"linkedin-jobs-scraper/models"
)

const searchBaseURL = "https://www.linkedin.com/jobs/search"

// timeWindowTokens maps a TimeWindow onto LinkedIn's f_TPR query token.
// WindowAny is absent: the parameter is omitted entirely.
var timeWindowTokens = map[models.TimeWindow]string{
	models.WindowDay:   "r86400",
	models.WindowWeek:  "r604800",
	models.WindowMonth: "r2592000",
}

// BuildSearchURL produces the fully-encoded search URL for one query.
// Pure and deterministic; no browser or network interaction.
func BuildSearchURL(q models.SearchQuery) string {
	params := url.Values{}
	params.Set("keywords", q.Keywords)
	params.Set("location", q.Location)
	if token, ok := timeWindowTokens[q.Window]; ok {
		params.Set("f_TPR", token)
	}
	return searchBaseURL + "?" + params.Encode()
}
