package config

import (
	"os"
	"strconv"
	"time"

	"github.com/elodie-boweren/MyBooking-sub000/internal/logger"
)

// Config collects everything the process reads from the environment.
// Unset variables fall back to the defaults below.
type Config struct {
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string

	BackendBaseURL string
	BackendTimeout time.Duration

	// PointUnitValue is the monetary value of one loyalty point in
	// currency units. TaxRate is applied to the post-discount total.
	PointUnitValue float64
	TaxRate        float64
}

func Load(l *logger.Logger) Config {
	return Config{
		Host:              env("HOST", "localhost"),
		Port:              env("PORT", "8092"),
		ReadHeaderTimeout: envDuration("READ_HEADER_TIMEOUT_SECONDS", 20),
		LivenessEndpoint:  env("LIVENESS_ENDPOINT", "/liveness"),
		BackendBaseURL:    env("BACKEND_BASE_URL", "http://localhost:8080"),
		BackendTimeout:    envDuration("BACKEND_TIMEOUT_SECONDS", 15),
		PointUnitValue:    envFloat(l, "POINT_UNIT_VALUE", 0.01),
		TaxRate:           envFloat(l, "TAX_RATE", 0),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envFloat(l *logger.Logger, key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		l.LogWarnf("%s=%q is not a number, using %v", key, v, fallback)

		return fallback
	}

	if f < 0 {
		l.LogWarnf("%s=%q is negative, using %v", key, v, fallback)

		return fallback
	}

	return f
}

func envDuration(key string, fallbackSeconds int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallbackSeconds) * time.Second
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return time.Duration(fallbackSeconds) * time.Second
	}

	return time.Duration(n) * time.Second
}
