package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DeepSeekAPIKey  string
	DeepSeekBaseURL string
	Model           string
	Port            string
	LogFile         string
	RedisURL        string
	CORSOrigin      string
	PromptProfile   string
	PromptsFile     string
	ModelRetries    int
	RetryDelay      time.Duration
	AdminToken      string
}

func Load() (*Config, error) {
	godotenv.Load()

	return &Config{
		DeepSeekAPIKey:  os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekBaseURL: getEnvOrDefault("DEEPSEEK_BASE_URL", "https://api.deepseek.com"),
		Model:           getEnvOrDefault("DEEPSEEK_MODEL", "deepseek-chat"),
		Port:            getEnvOrDefault("PORT", "8080"),
		LogFile:         getEnvOrDefault("LOG_FILE", "logs.csv"),
		RedisURL:        os.Getenv("REDIS_URL"),
		CORSOrigin:      getEnvOrDefault("CORS_ORIGIN", "https://health-rumor-detector.onrender.com"),
		PromptProfile:   getEnvOrDefault("PROMPT_PROFILE", "general"),
		PromptsFile:     os.Getenv("PROMPTS_FILE"),
		ModelRetries:    getEnvInt("MODEL_RETRIES", 2),
		RetryDelay:      getEnvDuration("RETRY_DELAY", time.Second),
		AdminToken:      os.Getenv("ADMIN_TOKEN"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return defaultValue
	}
	return d
}
