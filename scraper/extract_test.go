package scraper

import (
	"context"
	"testing"

	"linkedin-jobs-scraper/models"
)

func TestExtractRecordsFieldIsolation(t *testing.T) {
	sel := DefaultSelectors()
	sess := newStubSession(sel, []*stubElement{
		makeCard(sel, "Data Scientist", "https://jobs.example/1", "Acme", "Bangalore"),
		makeCard(sel, "ML Engineer", "https://jobs.example/2", "", "Mumbai"),
		makeCard(sel, "Data Engineer", "https://jobs.example/3", "Globex", ""),
	})

	records, err := ExtractRecords(context.Background(), sess, sel, "Data Scientist")
	if err != nil {
		t.Fatalf("ExtractRecords() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if records[0].Company != "Acme" || records[0].Location != "Bangalore" {
		t.Errorf("clean card mangled: %+v", records[0])
	}

	// Missing company must not cost the record its other fields.
	if records[1].Company != models.FieldUnavailable {
		t.Errorf("company = %q, want sentinel", records[1].Company)
	}
	if records[1].Title != "ML Engineer" || records[1].Location != "Mumbai" || records[1].URL != "https://jobs.example/2" {
		t.Errorf("sibling fields lost with missing company: %+v", records[1])
	}

	if records[2].Location != models.FieldUnavailable {
		t.Errorf("location = %q, want sentinel", records[2].Location)
	}
	if records[2].Company != "Globex" {
		t.Errorf("sibling company lost with missing location: %+v", records[2])
	}

	for i, rec := range records {
		if rec.SourceQuery != "Data Scientist" {
			t.Errorf("record %d tagged %q, want %q", i, rec.SourceQuery, "Data Scientist")
		}
		if rec.URL == "" {
			t.Errorf("record %d has empty URL", i)
		}
	}
}

func TestExtractRecordsSkipsCardWithoutAnchor(t *testing.T) {
	sel := DefaultSelectors()
	sess := newStubSession(sel, []*stubElement{
		makeCard(sel, "Data Scientist", "https://jobs.example/1", "Acme", "Pune"),
		makeCard(sel, "No Anchor", "", "Initech", "Delhi"),
		makeCard(sel, "ML Engineer", "https://jobs.example/3", "Globex", "Chennai"),
	})

	records, err := ExtractRecords(context.Background(), sess, sel, "Data Scientist")
	if err != nil {
		t.Fatalf("ExtractRecords() error = %v", err)
	}

	// Exactly one fewer record than containers scanned.
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].URL != "https://jobs.example/1" || records[1].URL != "https://jobs.example/3" {
		t.Errorf("document order not preserved: %+v", records)
	}
}

func TestExtractRecordsSkipsEmptyHref(t *testing.T) {
	sel := DefaultSelectors()
	card := makeCard(sel, "Ghost Listing", "https://jobs.example/1", "Acme", "Pune")
	card.kids[sel.CardLink].attr["href"] = "   "
	sess := newStubSession(sel, []*stubElement{card})

	records, err := ExtractRecords(context.Background(), sess, sel, "q")
	if err != nil {
		t.Fatalf("ExtractRecords() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}

func TestExtractRecordsEmptyPage(t *testing.T) {
	sel := DefaultSelectors()
	sess := newStubSession(sel, nil)

	records, err := ExtractRecords(context.Background(), sess, sel, "q")
	if err != nil {
		t.Fatalf("ExtractRecords() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}
