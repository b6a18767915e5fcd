package scraper

import (
	"strings"
	"testing"

	"linkedin-jobs-scraper/models"
)

func TestBuildSearchURL(t *testing.T) {
	tests := []struct {
		name        string
		query       models.SearchQuery
		wantParts   []string
		absentParts []string
	}{
		{
			name: "week window",
			query: models.SearchQuery{
				Keywords: "Data Scientist",
				Location: "India",
				Window:   models.WindowWeek,
			},
			wantParts: []string{
				"https://www.linkedin.com/jobs/search?",
				"keywords=Data+Scientist",
				"location=India",
				"f_TPR=r604800",
			},
		},
		{
			name: "day window",
			query: models.SearchQuery{
				Keywords: "Machine Learning Engineer",
				Location: "New York",
				Window:   models.WindowDay,
			},
			wantParts: []string{
				"keywords=Machine+Learning+Engineer",
				"location=New+York",
				"f_TPR=r86400",
			},
		},
		{
			name: "month window",
			query: models.SearchQuery{
				Keywords: "Gophers",
				Location: "Remote",
				Window:   models.WindowMonth,
			},
			wantParts: []string{"f_TPR=r2592000"},
		},
		{
			name: "any window omits the token entirely",
			query: models.SearchQuery{
				Keywords: "SRE",
				Location: "Berlin",
				Window:   models.WindowAny,
			},
			wantParts:   []string{"keywords=SRE", "location=Berlin"},
			absentParts: []string{"f_TPR"},
		},
		{
			name: "reserved characters are escaped",
			query: models.SearchQuery{
				Keywords: "C++ & Go Developer",
				Location: "São Paulo",
				Window:   models.WindowAny,
			},
			wantParts: []string{
				"keywords=C%2B%2B+%26+Go+Developer",
				"location=S%C3%A3o+Paulo",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSearchURL(tt.query)
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("BuildSearchURL() = %q, missing %q", got, part)
				}
			}
			for _, part := range tt.absentParts {
				if strings.Contains(got, part) {
					t.Errorf("BuildSearchURL() = %q, should not contain %q", got, part)
				}
			}
		})
	}
}

func TestBuildSearchURLDeterministic(t *testing.T) {
	q := models.SearchQuery{Keywords: "Data Scientist", Location: "India", Window: models.WindowWeek}
	if first, second := BuildSearchURL(q), BuildSearchURL(q); first != second {
		t.Errorf("same query produced different URLs: %q vs %q", first, second)
	}
}
