package scraper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Selectors are the CSS locators used against the search-results page.
// Centralising them makes future updates trivial — the target site defines
// no stable API and its markup changes without notice, so these are the
// brittle part of the system.
type Selectors struct {
	JobCard  string `yaml:"job_card"`
	CardLink string `yaml:"card_link"`
	Company  string `yaml:"company"`
	Location string `yaml:"location"`
	LoadMore string `yaml:"load_more"`
}

// DefaultSelectors returns the locators for the current LinkedIn jobs
// search markup.
func DefaultSelectors() Selectors {
	return Selectors{
		JobCard:  `.job-search-card`,
		CardLink: `a.job-card-list__title`,
		Company:  `.job-card-container__company-name`,
		Location: `.job-card-container__metadata-item`,
		LoadMore: `button[aria-label='See more jobs']`,
	}
}

// LoadSelectors reads selector overrides from a YAML file. Fields left
// empty in the file keep their defaults; an empty path returns defaults.
func LoadSelectors(path string) (Selectors, error) {
	sel := DefaultSelectors()
	if path == "" {
		return sel, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return sel, fmt.Errorf("read selectors file: %w", err)
	}

	var override Selectors
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return sel, fmt.Errorf("parse selectors file %s: %w", path, err)
	}

	if override.JobCard != "" {
		sel.JobCard = override.JobCard
	}
	if override.CardLink != "" {
		sel.CardLink = override.CardLink
	}
	if override.Company != "" {
		sel.Company = override.Company
	}
	if override.Location != "" {
		sel.Location = override.Location
	}
	if override.LoadMore != "" {
		sel.LoadMore = override.LoadMore
	}
	return sel, nil
}
