package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"rumor-checker/cache"
	"rumor-checker/config"
	"rumor-checker/handlers"
	"rumor-checker/logger"
	"rumor-checker/services"
	"rumor-checker/storage"
)

func main() {
	log.SetOutput(logger.GetWriter())
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("🚀 Starting Health Rumor Checker...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Failed to load configuration:", err)
	}
	if cfg.DeepSeekAPIKey == "" {
		log.Fatal("❌ DEEPSEEK_API_KEY is not set")
	}

	log.Printf("✓ Configuration loaded")
	log.Printf("  - Model: %s", cfg.Model)
	log.Printf("  - Prompt profile: %s", cfg.PromptProfile)
	log.Printf("  - Log file: %s", cfg.LogFile)
	log.Printf("  - Port: %s", cfg.Port)
	log.Printf("  - Retries: %d (delay %v)", cfg.ModelRetries, cfg.RetryDelay)

	cache.InitRedis(cfg.RedisURL)

	if cfg.PromptsFile != "" {
		if _, err := services.LoadPromptProfiles(cfg.PromptsFile); err != nil {
			log.Fatal("❌ Failed to load prompt profiles:", err)
		}
	}
	prompt, err := services.PromptProfile(cfg.PromptProfile)
	if err != nil {
		log.Fatal("❌ ", err)
	}

	client := services.NewDeepSeekClient(cfg.DeepSeekAPIKey, cfg.DeepSeekBaseURL, cfg.Model)
	invoker := services.NewModelInvoker(client, cfg.ModelRetries, cfg.RetryDelay)
	analyzerService := services.NewAnalyzerService(invoker, prompt)
	logbook := storage.NewRequestLogger(cfg.LogFile)

	analyzerHandler := handlers.NewAnalyzerHandler(analyzerService, logbook, cfg.CORSOrigin)
	staticHandler := handlers.NewStaticHandler("static")
	adminHandler := handlers.NewAdminHandler(cfg.AdminToken)
	log.Println("✓ Services initialized")

	http.HandleFunc("/", staticHandler.Index)
	http.HandleFunc("/analyze", analyzerHandler.Analyze)
	http.HandleFunc("/health", analyzerHandler.Health)
	http.HandleFunc("/limits", analyzerHandler.Limits)
	http.HandleFunc("/admin/logs", adminHandler.StreamLogs)

	addr := ":" + cfg.Port
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("🎯 Server running at http://localhost%s\n", addr)
	fmt.Printf("🩺 Model: %s | Profile: %s\n", cfg.Model, cfg.PromptProfile)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("\n📝 Example:")
	fmt.Printf(`   curl -X POST http://localhost%s/analyze -H "Content-Type: application/json" -d '{"text": "Sugar directly causes diabetes."}'`+"\n", addr)
	fmt.Println("\n" + strings.Repeat("=", 50) + "\n")

	log.Println("✓ Server ready to accept requests...")
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal("❌ Server error:", err)
	}
}
