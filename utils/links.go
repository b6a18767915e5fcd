package utils

import (
	"fmt"

	"linkedin-jobs-scraper/models"
)

// FormatLinks renders one markdown link per record, in result-set order.
func FormatLinks(results []models.QueryResult) []string {
	records := models.Flatten(results)
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, fmt.Sprintf("[%s at %s](%s)", rec.Title, rec.Company, rec.URL))
	}
	return out
}
