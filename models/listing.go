package models

// FieldUnavailable is substituted when a non-key field cannot be extracted
// from a listing card. Records are never dropped over a missing secondary
// field, only over a missing URL.
const FieldUnavailable = "N/A"

// ListingRecord holds all scraped data for a single job listing.
type ListingRecord struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	SourceQuery string `json:"source_query"`
}

// QueryResult is the outcome of processing one search query.
type QueryResult struct {
	Query   string
	Index   int // original position in the query slice — preserves output order
	Records []ListingRecord
	Err     error
}

// Flatten merges per-query batches into one flat result set, skipping
// failed queries. Insertion order is extraction order within a query,
// queries in input order. No deduplication: a listing matched by two
// queries appears twice, tagged differently.
func Flatten(results []QueryResult) []ListingRecord {
	all := make([]ListingRecord, 0)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		all = append(all, r.Records...)
	}
	return all
}
