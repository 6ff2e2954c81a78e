package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"rumor-checker/models"
)

// ModelClient is the contract for any chat-completion provider.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelInvoker wraps a ModelClient in a bounded retry loop and guarantees
// that Invoke always yields a syntactically valid JSON string.
type ModelInvoker struct {
	client  ModelClient
	retries int
	delay   time.Duration
}

func NewModelInvoker(client ModelClient, retries int, delay time.Duration) *ModelInvoker {
	return &ModelInvoker{
		client:  client,
		retries: retries,
		delay:   delay,
	}
}

var requiredKeys = []string{"conclusion", "explanation", "sources"}

// Invoke calls the model until one attempt produces parseable JSON, with
// a fixed pause between attempts. It never fails outward: when every
// attempt is exhausted a fallback payload naming the last error is
// returned instead.
func (inv *ModelInvoker) Invoke(ctx context.Context, prompt string) string {
	attempts := inv.retries + 1
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			log.Printf("[INVOKER] ⏳ Attempt %d/%d, pausing %v...", attempt, attempts, inv.delay)
			time.Sleep(inv.delay)
		}

		text, err := inv.client.Complete(ctx, prompt)
		if err != nil {
			log.Printf("[INVOKER] ❌ Model call failed: %v", err)
			lastErr = err
			continue
		}

		parsed, ok := parseModelJSON(text)
		if !ok {
			log.Printf("[INVOKER] ⚠ No parseable JSON in reply (%d chars)", len(text))
			lastErr = fmt.Errorf("model returned unparseable output")
			continue
		}

		for _, key := range requiredKeys {
			if _, present := parsed[key]; !present {
				if key == "sources" {
					parsed[key] = []interface{}{}
				} else {
					parsed[key] = "unknown"
				}
			}
		}

		out, err := json.Marshal(parsed)
		if err != nil {
			lastErr = err
			continue
		}

		log.Printf("[INVOKER] ✅ Valid JSON on attempt %d", attempt)
		return string(out)
	}

	log.Printf("[INVOKER] ❌ All %d attempts failed, returning fallback payload", attempts)
	return fallbackJSON(lastErr)
}

func fallbackJSON(lastErr error) string {
	msg := ""
	if lastErr != nil {
		msg = lastErr.Error()
	}
	out, _ := json.Marshal(map[string]interface{}{
		"conclusion":  "unknown",
		"explanation": "DeepSeek API call failed or returned unparseable output: " + msg,
		"sources":     []models.Source{models.PlaceholderSource()},
	})
	return string(out)
}

// parseModelJSON extracts and parses a JSON object from free-form model
// text. An empty object counts as a failed parse.
func parseModelJSON(text string) (map[string]interface{}, bool) {
	jsonStr, ok := extractJSON(text)
	if !ok {
		return nil, false
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, false
	}
	if len(parsed) == 0 {
		return nil, false
	}
	return parsed, true
}

// extractJSON locates the JSON object inside model text: a ```json fenced
// block if present, otherwise the span from the first '{' to the last '}'.
func extractJSON(text string) (string, bool) {
	if i := strings.Index(text, "```json"); i != -1 {
		rest := text[i+len("```json"):]
		if j := strings.Index(rest, "```"); j != -1 {
			return strings.TrimSpace(rest[:j]), true
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
