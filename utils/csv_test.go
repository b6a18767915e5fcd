package utils

import (
	"bytes"
	"errors"
	"testing"

	"linkedin-jobs-scraper/models"
)

func TestEncodeCSVEscaping(t *testing.T) {
	results := []models.QueryResult{
		{
			Query: "dev",
			Records: []models.ListingRecord{
				{
					Title:       `Engineer, Senior "Go"`,
					Company:     "Acme",
					Location:    "Pune, India",
					URL:         "https://jobs.example/1",
					SourceQuery: "dev",
				},
			},
		},
	}

	var buf bytes.Buffer
	n, err := EncodeCSV(&buf, results)
	if err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("rows = %d, want 1", n)
	}

	want := "Job Title,Company,Location,Job URL,Search Term\n" +
		"\"Engineer, Senior \"\"Go\"\"\",Acme,\"Pune, India\",https://jobs.example/1,dev\n"
	if buf.String() != want {
		t.Errorf("EncodeCSV() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestEncodeCSVSkipsFailedQueries(t *testing.T) {
	results := []models.QueryResult{
		{
			Query: "first",
			Records: []models.ListingRecord{
				{Title: "A", Company: "Acme", Location: "X", URL: "https://jobs.example/1", SourceQuery: "first"},
				{Title: "B", Company: "N/A", Location: "Y", URL: "https://jobs.example/2", SourceQuery: "first"},
			},
		},
		{Query: "second", Err: errors.New("no listings found")},
	}

	var buf bytes.Buffer
	n, err := EncodeCSV(&buf, results)
	if err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}
	if n != 2 {
		t.Errorf("rows = %d, want 2", n)
	}
	if lines := bytes.Count(buf.Bytes(), []byte("\n")); lines != 3 {
		t.Errorf("csv lines = %d, want header + 2 rows", lines)
	}
}
