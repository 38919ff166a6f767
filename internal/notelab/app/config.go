package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Required: issuer claim for session tokens

	DatabaseFile string        // Optional: path to SQLite database file (default: ./notelab.db)
	PepperFile   string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SessionTTL   time.Duration // Optional: session token lifetime (default: 30 days)

	RegistrationKey    string // Optional: if set, required to create any account
	AllowEmailRegister bool   // Optional: allow email/password registration (default: true)

	ServerURL string // Optional: public base URL, used for OAuth redirect URLs (default: http://localhost:{port})

	GitHubClientID     string // Optional: enables GitHub sign-in
	GitHubClientSecret string
	GoogleClientID     string // Optional: enables Google sign-in
	GoogleClientSecret string

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       os.Getenv("NOTELAB_ISSUER"),
		DatabaseFile: getEnvOrDefault("NOTELAB_DATABASE_FILE", "notelab.db"),
		PepperFile:   getEnvOrDefault("NOTELAB_PEPPER_FILE", "pepper"),
		SessionTTL:   getEnvDurationOrDefault("NOTELAB_SESSION_TTL", 30*24*time.Hour),

		RegistrationKey:    os.Getenv("NOTELAB_REGISTRATION_KEY"),
		AllowEmailRegister: getEnvBoolOrDefault("NOTELAB_ALLOW_EMAIL_REGISTER", true),

		ServerURL: os.Getenv("NOTELAB_SERVER_URL"),

		GitHubClientID:     os.Getenv("NOTELAB_GITHUB_CLIENT_ID"),
		GitHubClientSecret: os.Getenv("NOTELAB_GITHUB_CLIENT_SECRET"),
		GoogleClientID:     os.Getenv("NOTELAB_GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("NOTELAB_GOOGLE_CLIENT_SECRET"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "notelab"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
