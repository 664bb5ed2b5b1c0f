package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything main needs to wire the application.
type Config struct {
	Port string

	DBDriver   string
	SQLitePath string
	DBLogLevel string
	SeedDemo   bool

	CorsOrigins []string

	PropertyCacheTTL  time.Duration
	PropertyCacheSize int64

	RabbitMQURL        string
	BookingEventsQueue string
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Load reads the configuration from the environment. Bad values fall back to
// their defaults with a warning rather than stopping the server.
func Load() Config {
	return Config{
		Port:               envOrDefault("PORT", "8080"),
		DBDriver:           strings.ToLower(envOrDefault("DB_DRIVER", DriverMySQL)),
		SQLitePath:         envOrDefault("SQLITE_PATH", "file::memory:?cache=shared"),
		DBLogLevel:         strings.ToLower(envOrDefault("DB_LOG_LEVEL", "warn")),
		SeedDemo:           envBool("SEED_DEMO_DATA", false),
		CorsOrigins:        parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		PropertyCacheTTL:   envDuration("PROPERTY_CACHE_TTL", 5*time.Minute),
		PropertyCacheSize:  envInt64("PROPERTY_CACHE_SIZE", 1000),
		RabbitMQURL:        strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
		BookingEventsQueue: envOrDefault("BOOKING_EVENTS_QUEUE", "booking-events"),
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("warning: invalid %s=%q, using %t", key, raw, def)
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		log.Printf("warning: invalid %s=%q, using %s", key, raw, def)
		return def
	}
	return v
}

func envInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		log.Printf("warning: invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
