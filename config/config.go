package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	BackendURL       string
	BackendTimeout   time.Duration
	UserRegisterPath string

	SessionStore  string
	SessionTTL    time.Duration
	SessionCookie string
	IdentityTTL   time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MongoURI      string
	MongoDatabase string

	PebblePath string

	CSRFKey     string
	CORSOrigins []string

	ReportDailyLimit int
	MaxUploadBytes   int64

	GeocoderURL       string
	GeocoderUserAgent string

	LogLevel  string
	LogFormat string

	OTLPEndpoint string
}

// Load reads .env (when present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	return Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("GO_ENV", "development"),

		BackendURL:       strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:5001"), "/"),
		BackendTimeout:   getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second),
		UserRegisterPath: getEnv("USER_REGISTER_PATH", "/api/users/register"),

		SessionStore:  getEnv("SESSION_STORE", "memory"),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 72*time.Hour),
		SessionCookie: getEnv("SESSION_COOKIE", "ngo_sid"),
		IdentityTTL:   getEnvAsDuration("IDENTITY_TTL", 5*time.Minute),

		RedisAddr:     getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		MongoURI:      getEnv("MONGODB_URI", ""),
		MongoDatabase: getEnv("MONGODB_DATABASE", "ngoconnect"),

		PebblePath: getEnv("PEBBLE_PATH", "data/sessions"),

		CSRFKey:     getEnv("CSRF_KEY", ""),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),

		ReportDailyLimit: getEnvAsInt("REPORT_DAILY_LIMIT", 10),
		MaxUploadBytes:   int64(getEnvAsInt("MAX_UPLOAD_BYTES", 5<<20)),

		GeocoderURL:       strings.TrimRight(getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"), "/"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "ngoconnect-web/1.0"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

// Production reports whether cookies must be marked Secure.
func (c Config) Production() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
