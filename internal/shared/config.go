package shared

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	CatalogCSV string
	StaticDir  string

	RatingsBackend string // none|file|mysql
	RatingsFile    string

	DBHost string
	DBPort string
	DBName string
	DBUser string
	DBPass string

	RedisAddr  string
	RedisPass  string
	RedisDB    int
	SessionTTL time.Duration

	AquariumBase string
	SlugsFile    string
	Workers      int
	FetchRPS     int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),

		CatalogCSV: env("CATALOG_CSV", "data/aquarium.csv"),
		StaticDir:  env("STATIC_DIR", "www"),

		RatingsBackend: env("RATINGS_BACKEND", "none"),
		RatingsFile:    env("RATINGS_FILE", "ratings_backup.csv"),

		DBHost: env("DB_HOST", "localhost"),
		DBPort: env("DB_PORT", "3306"),
		DBName: env("DB_NAME", "aquarium"),
		DBUser: env("DB_USER", "root"),
		DBPass: env("DB_PASSWORD", ""),

		RedisAddr:  env("REDIS_ADDR", ""),
		RedisPass:  env("REDIS_PASSWORD", ""),
		RedisDB:    atoi("REDIS_DB", 0),
		SessionTTL: time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,

		AquariumBase: env("AQUARIUM_BASE_URL", "https://api.animal-facts.example.com/v1"),
		SlugsFile:    env("INGEST_SLUGS_FILE", ""),
		Workers:      atoi("INGEST_WORKERS", 8),
		FetchRPS:     atoi("INGEST_RPS", 5),
	}
}

// MySQLDSN composes the DSN from the individual connection env vars.
func (c Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
