package config

import (
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the scraper.
type Config struct {
	Titles   []string
	Location string
	Window   string
	MaxPages int
	OutFile  string
	JSONFile string
	Headless bool

	UserAgent     string
	SelectorsFile string

	// Timing
	PageLoadDelay   time.Duration
	SettleDelay     time.Duration
	LoadMoreTimeout time.Duration
	GlobalTimeout   time.Duration

	// Pacing
	RateLimitPerSecond float64
	RateBurst          int

	// PostgreSQL (optional — skipped when DBHost is empty)
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		Titles: []string{
			"Data Scientist",
			"Machine Learning Engineer",
		},
		Location: "India",
		Window:   "week",
		MaxPages: 5,
		OutFile:  "linkedin_jobs.csv",
		JSONFile: "linkedin_jobs.json",
		Headless: true,
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		SelectorsFile: getEnv("SELECTORS_FILE", ""),

		PageLoadDelay:   3 * time.Second,
		SettleDelay:     2 * time.Second,
		LoadMoreTimeout: 10 * time.Second,
		GlobalTimeout:   30 * time.Minute,

		RateLimitPerSecond: 1,
		RateBurst:          2,

		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "jobs"),
		DBPassword: getEnv("DB_PASSWORD", "jobs"),
		DBName:     getEnv("DB_NAME", "linkedin_jobs"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// RandomDelay returns a jittered pause used between queries so successive
// searches are not fired back to back.
func RandomDelay() time.Duration {
	return time.Second + time.Duration(rand.Intn(1500))*time.Millisecond
}

func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}
