package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Directory DirectoryConfig
	Geocode   GeocodeConfig
}

type ServerConfig struct {
	Port               string
	RateLimitPerSecond int
	RateLimitBurst     int
}

type DirectoryConfig struct {
	// APIKey may be empty. That is a supported mode: the places service
	// serves deterministic mock results without touching the network.
	APIKey       string
	BaseURL      string
	RadiusMeters int
}

type GeocodeConfig struct {
	Endpoint string
	Disabled bool
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			RateLimitPerSecond: getEnvInt("RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 100),
		},
		Directory: DirectoryConfig{
			APIKey:       os.Getenv("DIRECTORY_API_KEY"),
			BaseURL:      os.Getenv("DIRECTORY_BASE_URL"),
			RadiusMeters: getEnvInt("DIRECTORY_RADIUS_METERS", 10000),
		},
		Geocode: GeocodeConfig{
			Endpoint: os.Getenv("GEOCODE_ENDPOINT"),
			Disabled: getEnvBool("GEOCODE_DISABLED", false),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
