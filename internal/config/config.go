package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the API server.
type Config struct {
	Port string

	// Reference data
	CatalogSource   string // fixtures | postgres
	CatalogFixtures string // optional JSON/YAML file overriding the bundled parts
	CatalogLatency  time.Duration
	DatabaseURL     string
	RunMigrations   bool

	// Cart persistence
	CartStorage string // memory | file | redis
	CartDir     string
	RedisURL    string
	CartTTL     time.Duration

	// In-memory session carts
	CartSessionMax  int
	CartSessionIdle time.Duration

	SessionSecret string
	SessionTTL    time.Duration

	LogLevel       string
	LogFormat      string
	TracingEnabled bool

	CORSAllowOrigins []string
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	// A missing .env is fine; the environment may come from the container.
	_ = godotenv.Load()

	return Config{
		Port: getenv("APP_PORT", "8080"),

		CatalogSource:   strings.ToLower(getenv("CATALOG_SOURCE", "fixtures")),
		CatalogFixtures: getenv("CATALOG_FIXTURES", ""),
		CatalogLatency:  parseDuration(getenv("CATALOG_LATENCY", "100ms"), 100*time.Millisecond),
		DatabaseURL:     getenv("DATABASE_URL", ""),
		RunMigrations:   envBool("RUN_MIGRATIONS", true),

		CartStorage: strings.ToLower(getenv("CART_STORAGE", "file")),
		CartDir:     getenv("CART_DIR", "./data"),
		RedisURL:    getenv("REDIS_URL", "redis://localhost:6379/0"),
		CartTTL:     parseDuration(getenv("CART_TTL", "720h"), 30*24*time.Hour),

		CartSessionMax:  envInt("CART_SESSION_MAX", 10000),
		CartSessionIdle: parseDuration(getenv("CART_SESSION_IDLE", "30m"), 30*time.Minute),

		SessionSecret: getenv("SESSION_SECRET", "change-me"),
		SessionTTL:    parseDuration(getenv("SESSION_TTL", "720h"), 30*24*time.Hour),

		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "text"),
		TracingEnabled: envBool("TRACING_ENABLED", false),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func envBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return fallback
	}
}

func envInt(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return n
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
