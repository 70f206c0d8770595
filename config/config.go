package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Resend relay configuration. An empty API key puts the contact
	// endpoint into simulated-delivery mode.
	ResendAPIKey     string
	ContactRecipient string
	ContactFrom      string
	// Sanity content source
	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityReadToken  string
	// Plausible analytics (server-side events)
	PlausibleDomain   string
	PlausibleEndpoint string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Relay configuration
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", "toimisto@psbl.fi"),
		ContactFrom:      getEnv("CONTACT_FROM", "PSBL Yhteydenotto <no-reply@psbl.fi>"),
		// Content source
		SanityProjectID:  getEnv("SANITY_PROJECT_ID", ""),
		SanityDataset:    getEnv("SANITY_DATASET", "production"),
		SanityAPIVersion: getEnv("SANITY_API_VERSION", "2024-01-01"),
		SanityReadToken:  getEnv("SANITY_READ_TOKEN", ""),
		// Analytics
		PlausibleDomain:   getEnv("PLAUSIBLE_DOMAIN", ""),
		PlausibleEndpoint: getEnv("PLAUSIBLE_ENDPOINT", "https://plausible.io/api/event"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Contact submissions will be simulated, not delivered.")
	}
	if cfg.SanityProjectID == "" {
		log.Println("WARNING: SANITY_PROJECT_ID not configured. All pages will render from fallback content.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
