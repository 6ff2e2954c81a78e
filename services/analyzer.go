package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"rumor-checker/cache"
	"rumor-checker/models"
)

const cacheTTL = 24 * time.Hour

// AnalyzerService runs the full pipeline for one statement: prompt
// construction, model invocation with retries, and normalization.
type AnalyzerService struct {
	invoker *ModelInvoker
	prompt  *PromptTemplate
}

func NewAnalyzerService(invoker *ModelInvoker, prompt *PromptTemplate) *AnalyzerService {
	return &AnalyzerService{
		invoker: invoker,
		prompt:  prompt,
	}
}

// AnalyzeStatement checks one health statement. The pipeline itself never
// fails: upstream errors degrade into a fallback payload. The only error
// returned here is a request context that is already dead.
func (s *AnalyzerService) AnalyzeStatement(ctx context.Context, text string) (*models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Printf("[ANALYZER] 📝 Statement received (%d chars, profile %q)", len(text), s.prompt.Name)

	key := cache.Key(s.prompt.Name, text)
	if cached, err := cache.Get(key); err == nil {
		var result models.AnalysisResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			log.Printf("[ANALYZER] ⚡ Cache hit")
			return &result, nil
		}
	}

	prompt := s.prompt.Build(text)
	log.Printf("[ANALYZER] 🤖 Sending prompt to model (%d chars)...", len(prompt))

	raw := s.invoker.Invoke(ctx, prompt)
	result := NormalizeResponse(raw)

	log.Printf("[ANALYZER] ✅ Conclusion: %q (%d source(s))", result.Conclusion, len(result.Sources))

	// Degraded fallbacks are not worth caching.
	if result.Conclusion != "unknown" {
		if data, err := json.Marshal(result); err == nil {
			cache.Set(key, string(data), cacheTTL)
		}
	}

	return result, nil
}
