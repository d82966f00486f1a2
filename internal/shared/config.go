package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	LogLevel      string
	HTTPAddr      string
	MetricsAddr   string
	StoreBackend  string // memory|mysql
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	SeedSource    string // builtin, a YAML path or an http(s) feed URL
	FeedKey       string
	FeedRPS       int
	Workers       int
	MapStyle      string
	DefaultLocale string
	CacheTTL      time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric env value")
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		LogLevel:      env("LOG_LEVEL", "info"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		StoreBackend:  strings.ToLower(env("STORE_BACKEND", "memory")),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/tepoz?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		SeedSource:    env("SEED_SOURCE", "builtin"),
		FeedKey:       env("FEED_API_KEY", ""),
		FeedRPS:       atoi("FEED_RPS", 5),
		Workers:       atoi("SEED_WORKERS", 8),
		MapStyle:      env("MAP_STYLE", "mapbox"),
		DefaultLocale: env("DEFAULT_LOCALE", "es"),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.StoreBackend != "memory" && c.StoreBackend != "mysql" {
		log.Warn().Str("backend", c.StoreBackend).Msg("unknown STORE_BACKEND, using memory")
		c.StoreBackend = "memory"
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if isURL(c.SeedSource) && c.FeedKey == "" {
		log.Warn().Msg("FEED_API_KEY is empty")
	}
	return c
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
