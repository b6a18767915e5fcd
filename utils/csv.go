package utils

import (
	"encoding/csv"
	"io"
	"os"

	"linkedin-jobs-scraper/models"
)

// csvHeader is the fixed column order of the export artifact.
var csvHeader = []string{"Job Title", "Company", "Location", "Job URL", "Search Term"}

// EncodeCSV writes the flattened result set to w as a UTF-8 CSV document
// with standard quoting. Returns the number of data rows written.
func EncodeCSV(w io.Writer, results []models.QueryResult) (int, error) {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return 0, err
	}

	total := 0
	for _, rec := range models.Flatten(results) {
		row := []string{
			rec.Title,
			rec.Company,
			rec.Location,
			rec.URL,
			rec.SourceQuery,
		}
		if err := writer.Write(row); err != nil {
			return total, err
		}
		total++
	}

	writer.Flush()
	return total, writer.Error()
}

// WriteCSV writes all results from every query into one flat CSV file.
// Rows are grouped by query in the original input order.
func WriteCSV(filename string, results []models.QueryResult) (int, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return EncodeCSV(f, results)
}
