package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer         string // Required: issuer claim for session tokens
	BootstrapToken string // Optional: token required to onboard requesters; empty disables onboarding

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./callbridge.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	SessionTTL    time.Duration // Session token lifetime (default: 24h)
	InvitationTTL time.Duration // Invitation validity window (default: 168h)
	SweepInterval time.Duration // Invitation expiry sweep interval (default: 1h)

	DefaultCallCredits            int // Credits seeded on new requester accounts (default: 5)
	DefaultMonthlyInvitationLimit int // Monthly invitation quota for new requesters (default: 10)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:         getEnvOrDefault("CALLBRIDGE_ISSUER", "callbridge"),
		BootstrapToken: os.Getenv("CALLBRIDGE_BOOTSTRAP_TOKEN"),

		DatabaseFile:        getEnvOrDefault("CALLBRIDGE_DATABASE_FILE", "callbridge.db"),
		PepperFile:          getEnvOrDefault("CALLBRIDGE_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		SessionTTL:    getEnvDurationOrDefault("CALLBRIDGE_SESSION_TTL", 24*time.Hour),
		InvitationTTL: getEnvDurationOrDefault("CALLBRIDGE_INVITATION_TTL", 7*24*time.Hour),
		SweepInterval: getEnvDurationOrDefault("CALLBRIDGE_SWEEP_INTERVAL", time.Hour),

		DefaultCallCredits:            getEnvIntOrDefault("CALLBRIDGE_DEFAULT_CALL_CREDITS", 5),
		DefaultMonthlyInvitationLimit: getEnvIntOrDefault("CALLBRIDGE_DEFAULT_INVITATION_LIMIT", 10),
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
