package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds every knob the service reads from the environment.
// Provider keys are independently optional: a missing key disables only the
// stages that depend on that provider, never the whole process.
type Config struct {
	Port string

	// GroqAPIKey drives the score, plan and activity stages.
	GroqAPIKey string

	// GeminiAPIKey drives the schedule stage.
	GeminiAPIKey string

	// CORSAllowOrigins defaults to permissive ("*") for development and must
	// be narrowed via CORS_ALLOW_ORIGINS for any real deployment.
	CORSAllowOrigins []string

	// DatabaseURL is optional; when set, the connection pool's stats are
	// reported on the system-health endpoint. No business path uses it.
	DatabaseURL string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	return Config{
		Port:             getEnv("PORT", "3000"),
		GroqAPIKey:       getEnv("GROQ_API_KEY", ""),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
