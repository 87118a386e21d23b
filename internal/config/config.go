// Package config reads travelkit settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when no explicit env file is given. A missing
// default file is not an error.
const DefaultEnvFile = ".env"

// Config holds all configuration for the travelkit commands
type Config struct {
	// Route document
	OutputPath string
	RoutesDir  string

	// Calendar export
	EventsHTML string
	ICSDir     string

	// Agenda export
	TimeslotsDir   string
	StartupsDir    string
	AgendaBaseURL  string
	AgendaPage     int
	ExhibitionPage int

	// Profile lookup
	SearchURL   string
	HTTPTimeout time.Duration

	LogLevel string
}

// Load reads configuration from environment variables with defaults. When
// envFile is set it must exist; otherwise DefaultEnvFile is loaded if present.
// Values already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file %s: %w", DefaultEnvFile, err)
	}

	cfg := &Config{
		OutputPath: getEnv("TRAVELKIT_OUTPUT", "travel-routes/travel-routes-data.json"),
		RoutesDir:  getEnv("TRAVELKIT_ROUTES_DIR", "travel-routes/data/routes"),

		EventsHTML: getEnv("TRAVELKIT_EVENTS_HTML", "universal-home.html"),
		ICSDir:     getEnv("TRAVELKIT_ICS_DIR", "ics"),

		TimeslotsDir:   getEnv("TRAVELKIT_TIMESLOTS_DIR", "timeslots"),
		StartupsDir:    getEnv("TRAVELKIT_STARTUPS_DIR", "startups_split"),
		AgendaBaseURL:  getEnv("TRAVELKIT_AGENDA_BASE_URL", "https://hinterlandofthings.com/de/wp-json/wp/v2/pages/%d"),
		AgendaPage:     getEnvInt("TRAVELKIT_AGENDA_PAGE", 6479),
		ExhibitionPage: getEnvInt("TRAVELKIT_EXHIBITION_PAGE", 4286),

		SearchURL:   getEnv("TRAVELKIT_SEARCH_URL", "https://duckduckgo.com/html/"),
		HTTPTimeout: getEnvDuration("TRAVELKIT_HTTP_TIMEOUT", 10*time.Second),

		LogLevel: getEnv("TRAVELKIT_LOG_LEVEL", "INFO"),
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
