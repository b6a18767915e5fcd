package utils

import (
	"sort"

	"linkedin-jobs-scraper/models"
)

type QueryCount struct {
	Query string
	Count int
}

type CompanyCount struct {
	Company string
	Count   int
}

type SummaryStats struct {
	TotalRecords    int
	RecordsPerQuery []QueryCount
	TopCompanies    []CompanyCount
	MissingCompany  int
	MissingLocation int
}

// BuildSummaryStats summarises a finished run: how much each query
// contributed, which companies dominate, and how often secondary fields
// fell back to the sentinel.
func BuildSummaryStats(results []models.QueryResult) SummaryStats {
	all := models.Flatten(results)
	stats := SummaryStats{TotalRecords: len(all)}

	perQuery := make([]QueryCount, 0, len(results))
	for _, r := range results {
		perQuery = append(perQuery, QueryCount{Query: r.Query, Count: len(r.Records)})
	}
	stats.RecordsPerQuery = perQuery

	if len(all) == 0 {
		return stats
	}

	companyCounts := make(map[string]int)
	for _, rec := range all {
		if rec.Company == models.FieldUnavailable {
			stats.MissingCompany++
		} else {
			companyCounts[rec.Company]++
		}
		if rec.Location == models.FieldUnavailable {
			stats.MissingLocation++
		}
	}

	top := make([]CompanyCount, 0, len(companyCounts))
	for company, count := range companyCounts {
		top = append(top, CompanyCount{Company: company, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count == top[j].Count {
			return top[i].Company < top[j].Company
		}
		return top[i].Count > top[j].Count
	})
	if len(top) > 5 {
		top = top[:5]
	}
	stats.TopCompanies = top

	return stats
}
