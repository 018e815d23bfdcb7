package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Model      ModelConfig
	Search     SearchConfig
	Enrichment EnrichmentConfig
	Guardrail  GuardrailConfig
	Logging    LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// ModelConfig holds configuration for the OpenAI-compatible chat API
// used for listing content generation.
type ModelConfig struct {
	APIKey      string
	APIBase     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     int // seconds
	Enabled     bool
}

// SearchConfig holds configuration for the Tavily-compatible web search API
// used by the enrichment stage.
type SearchConfig struct {
	APIKey      string
	APIBase     string
	MaxResults  int
	SearchDepth string
	Timeout     int // seconds, per query
	Enabled     bool
}

// EnrichmentConfig holds enrichment behavior configuration.
type EnrichmentConfig struct {
	Strategy string // "minimal" (2 concurrent searches) or "comprehensive" (6 sequential)
}

// GuardrailConfig holds overrides for the guardrail rule vocabulary.
// An empty RulesPath means the embedded defaults are used.
type GuardrailConfig struct {
	RulesPath string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Mode string // "dev" or "prod"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Model: ModelConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			APIBase:     getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.7),
			MaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 2048),
			Timeout:     getEnvAsInt("OPENAI_TIMEOUT", 60),
			Enabled:     getEnv("OPENAI_API_KEY", "") != "",
		},
		Search: SearchConfig{
			APIKey:      getEnv("TAVILY_API_KEY", ""),
			APIBase:     getEnv("TAVILY_API_BASE", "https://api.tavily.com"),
			MaxResults:  getEnvAsInt("TAVILY_MAX_RESULTS", 3),
			SearchDepth: getEnv("TAVILY_SEARCH_DEPTH", "advanced"),
			Timeout:     getEnvAsInt("TAVILY_TIMEOUT", 30),
			Enabled:     getEnv("TAVILY_API_KEY", "") != "",
		},
		Enrichment: EnrichmentConfig{
			Strategy: getEnv("ENRICHMENT_STRATEGY", "minimal"),
		},
		Guardrail: GuardrailConfig{
			RulesPath: getEnv("GUARDRAIL_RULES_PATH", ""),
		},
		Logging: LoggingConfig{
			Mode: getEnv("LOG_MODE", "prod"),
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
