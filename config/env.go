package config

import (
	"os"
	"strconv"
	"strings"
)

// DefaultPort is where the API listens when PORT is unset.
const DefaultPort = "8081"

// Port returns PORT, or DefaultPort.
func Port() string {
	return getEnv("PORT", DefaultPort)
}

// IsProduction reports whether APP_ENV is "production".
func IsProduction() bool {
	return strings.EqualFold(os.Getenv("APP_ENV"), "production")
}

// GetEnv is the exported form of getEnv for packages outside config.
func GetEnv(key, defaultValue string) string {
	return getEnv(key, defaultValue)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetEnvFloat reads a float, returning defaultValue when unset or malformed.
func GetEnvFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// GetEnvInt reads an int, returning defaultValue when unset or malformed.
func GetEnvInt(key string, defaultValue int) int {
	return getEnvInt(key, defaultValue)
}

// AllowedOrigins returns ALLOWED_ORIGINS split on commas.
func AllowedOrigins() []string {
	raw := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
