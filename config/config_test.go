package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DEEPSEEK_API_KEY", "DEEPSEEK_BASE_URL", "DEEPSEEK_MODEL", "PORT",
		"LOG_FILE", "REDIS_URL", "CORS_ORIGIN", "PROMPT_PROFILE",
		"PROMPTS_FILE", "MODEL_RETRIES", "RETRY_DELAY", "ADMIN_TOKEN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "deepseek-chat" {
		t.Fatalf("expected default model deepseek-chat, got %q", cfg.Model)
	}
	if cfg.DeepSeekBaseURL != "https://api.deepseek.com" {
		t.Fatalf("unexpected base URL: %q", cfg.DeepSeekBaseURL)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.LogFile != "logs.csv" {
		t.Fatalf("expected default log file logs.csv, got %q", cfg.LogFile)
	}
	if cfg.ModelRetries != 2 || cfg.RetryDelay != time.Second {
		t.Fatalf("unexpected retry defaults: %d / %v", cfg.ModelRetries, cfg.RetryDelay)
	}
	if cfg.PromptProfile != "general" {
		t.Fatalf("expected default profile general, got %q", cfg.PromptProfile)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("MODEL_RETRIES", "5")
	t.Setenv("RETRY_DELAY", "250ms")
	t.Setenv("PROMPT_PROFILE", "pcos")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DeepSeekAPIKey != "sk-test" {
		t.Fatalf("API key not picked up: %q", cfg.DeepSeekAPIKey)
	}
	if cfg.ModelRetries != 5 || cfg.RetryDelay != 250*time.Millisecond {
		t.Fatalf("retry overrides not applied: %d / %v", cfg.ModelRetries, cfg.RetryDelay)
	}
	if cfg.PromptProfile != "pcos" {
		t.Fatalf("profile override not applied: %q", cfg.PromptProfile)
	}
}

func TestLoadRejectsBadRetryValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODEL_RETRIES", "many")
	t.Setenv("RETRY_DELAY", "-3s")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ModelRetries != 2 || cfg.RetryDelay != time.Second {
		t.Fatalf("bad values should fall back to defaults, got %d / %v", cfg.ModelRetries, cfg.RetryDelay)
	}
}
