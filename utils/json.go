package utils

import (
	"encoding/json"
	"os"

	"linkedin-jobs-scraper/models"
)

// WriteJSON writes all successful query results into a single flat JSON
// array. Returns the total number of records written.
func WriteJSON(filename string, results []models.QueryResult) (int, error) {
	all := models.Flatten(results)

	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(all); err != nil {
		return 0, err
	}

	return len(all), nil
}
