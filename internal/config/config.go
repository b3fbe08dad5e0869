package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	AllowOrigins     []string
	SessionSecret    string
	SessionTTL       time.Duration
	SecureCookies    bool
	LogLevel         string
	LogstashTCPAddr  string
	DatabaseURL      string
	SearchDelay      time.Duration
	ListingPath      string
	MinIOEndpoint    string
	MinIOAccessKey   string
	MinIOSecretKey   string
	MinIOUseSSL      bool
	MinIOBucket      string
	MinIOPublicURL   string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SMTPFrom         string
	SiteURL          string
	NotifyRatePerMin int
	SwaggerSpecPath  string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	notifyRate := 6
	if v, err := strconv.Atoi(getenv("NOTIFY_RATE_PER_MIN", "6")); err == nil && v > 0 {
		notifyRate = v
	}

	return Config{
		Port:             getenv("PORT", "8080"),
		AllowOrigins:     splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		SessionSecret:    must("SESSION_SECRET"),
		SessionTTL:       duration("SESSION_TTL", 30*24*time.Hour),
		SecureCookies:    getenv("SECURE_COOKIES", "false") == "true",
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogstashTCPAddr:  getenv("LOGSTASH_TCP_ADDR", ""),
		DatabaseURL:      getenv("DATABASE_URL", ""),
		SearchDelay:      duration("SEARCH_DELAY", 1500*time.Millisecond),
		ListingPath:      getenv("LISTING_PATH", "/guides"),
		MinIOEndpoint:    getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:   getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:   getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:      getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucket:      getenv("MINIO_BUCKET_ASSETS", "guideme-assets"),
		MinIOPublicURL:   getenv("MINIO_PUBLIC_URL", ""),
		SMTPHost:         getenv("SMTP_HOST", ""),
		SMTPPort:         getenv("SMTP_PORT", ""),
		SMTPUsername:     getenv("SMTP_USERNAME", ""),
		SMTPPassword:     getenv("SMTP_PASSWORD", ""),
		SMTPFrom:         getenv("SMTP_FROM", ""),
		SiteURL:          getenv("SITE_URL", "http://localhost:8080"),
		NotifyRatePerMin: notifyRate,
		SwaggerSpecPath:  getenv("SWAGGER_SPEC_PATH", "docs/swagger.yaml"),
	}
}

// AssetsEnabled reports whether fixture images should be served from MinIO.
func (c Config) AssetsEnabled() bool {
	return c.MinIOEndpoint != "" && c.MinIOAccessKey != "" && c.MinIOSecretKey != ""
}

func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPFrom != ""
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func duration(k string, d time.Duration) time.Duration {
	raw := os.Getenv(k)
	if raw == "" {
		return d
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		log.Printf("Warning: invalid %s=%q, using %s", k, raw, d)
		return d
	}
	return v
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
