package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"linkedin-jobs-scraper/browser"
	"linkedin-jobs-scraper/config"
	"linkedin-jobs-scraper/models"
	"linkedin-jobs-scraper/scraper"
	"linkedin-jobs-scraper/services"
	"linkedin-jobs-scraper/storage"
	"linkedin-jobs-scraper/utils"
)

const (
	minPages = 1
	maxPages = 20
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("✗ %v", err)
	}
}

// run carries the whole program so deferred cleanup — above all the
// browser process teardown — happens on every exit path, which a
// log.Fatalf in main would skip.
func run() error {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.Default()

	titlesFlag := flag.String("titles", strings.Join(cfg.Titles, ","),
		"Comma-separated job titles to search for")
	location := flag.String("location", cfg.Location,
		"Location to search in")
	window := flag.String("window", cfg.Window,
		"Time window: day, week, month or any")
	pages := flag.Int("pages", cfg.MaxPages,
		"Load-more rounds per query (1-20)")
	outFile := flag.String("out", cfg.OutFile,
		"Output CSV filename")
	headless := flag.Bool("headless", cfg.Headless,
		"Run Chrome headless (false = visible window)")
	flag.Parse()

	cfg.Titles = splitTrim(*titlesFlag, ",")
	cfg.Location = *location
	cfg.Window = *window
	cfg.MaxPages = clamp(*pages, minPages, maxPages)
	cfg.OutFile = *outFile
	cfg.Headless = *headless

	win, err := models.ParseTimeWindow(cfg.Window)
	if err != nil {
		return err
	}

	queries := make([]models.SearchQuery, 0, len(cfg.Titles))
	for _, title := range cfg.Titles {
		queries = append(queries, models.SearchQuery{
			Keywords: title,
			Location: cfg.Location,
			Window:   win,
			MaxPages: cfg.MaxPages,
		})
	}
	if len(queries) == 0 {
		return fmt.Errorf("no job titles given")
	}

	selectors, err := scraper.LoadSelectors(cfg.SelectorsFile)
	if err != nil {
		return err
	}

	log.Printf("╔═══════════════════════════════════════════════════╗")
	log.Printf("║           LinkedIn Job Listings Scraper           ║")
	log.Printf("╚═══════════════════════════════════════════════════╝")
	log.Printf("Titles   : %s", strings.Join(cfg.Titles, ", "))
	log.Printf("Location : %s", cfg.Location)
	log.Printf("Window   : %s", win)
	log.Printf("Rounds   : %d per query", cfg.MaxPages)
	log.Printf("Output   : %s", cfg.OutFile)

	rootCtx, cancelRoot := context.WithTimeout(context.Background(), cfg.GlobalTimeout)
	defer cancelRoot()

	mgr := browser.NewManager(browser.NewChromeLauncher(browser.ChromeOptions{
		Headless:  cfg.Headless,
		UserAgent: cfg.UserAgent,
	}))
	defer mgr.Terminate()

	engine := services.NewEngine(mgr, cfg, selectors)
	results, err := engine.Run(rootCtx, queries)
	if err != nil {
		return err
	}

	total, err := utils.WriteCSV(cfg.OutFile, results)
	if err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	if _, err := utils.WriteJSON(cfg.JSONFile, results); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}

	if cfg.DBHost != "" {
		store, err := storage.NewPostgresStore(cfg)
		if err != nil {
			return fmt.Errorf("connect to PostgreSQL: %w", err)
		}
		defer store.Close()

		dbCtx, cancelDB := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelDB()
		saved, err := store.SaveResults(dbCtx, results)
		if err != nil {
			return fmt.Errorf("store jobs in PostgreSQL: %w", err)
		}
		log.Printf("  DB   — %d jobs upserted → jobs table", saved)
	}

	log.Printf("═══════════════════════════════════════════════════")
	log.Printf("  DONE — %d total jobs → %s", total, cfg.OutFile)
	for _, r := range results {
		status := fmt.Sprintf("%d jobs", len(r.Records))
		if r.Err != nil {
			status = "WARNING: " + r.Err.Error()
		}
		log.Printf("    %-28s %s", r.Query+":", status)
	}

	stats := utils.BuildSummaryStats(results)
	log.Printf("  STATS")
	log.Printf("    Total Records          : %d", stats.TotalRecords)
	log.Printf("    Missing Company Field  : %d", stats.MissingCompany)
	log.Printf("    Missing Location Field : %d", stats.MissingLocation)
	log.Printf("    Top Companies")
	for _, c := range stats.TopCompanies {
		log.Printf("      - %s: %d", c.Company, c.Count)
	}

	log.Printf("  LINKS")
	for _, link := range utils.FormatLinks(results) {
		log.Printf("    %s", link)
	}
	log.Printf("═══════════════════════════════════════════════════")
	return nil
}

func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
