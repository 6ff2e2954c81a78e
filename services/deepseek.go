package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"rumor-checker/models"
)

type DeepSeekClient struct {
	APIKey  string
	BaseURL string
	Model   string

	httpClient *http.Client
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Usage models.TokenUsage `json:"usage"`
}

func NewDeepSeekClient(apiKey, baseURL, model string) *DeepSeekClient {
	return &DeepSeekClient{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete sends one chat-completion request with deterministic decoding.
// A reply without choices is not an error: the payload is simply empty,
// which the invoker treats as an unparseable attempt.
func (c *DeepSeekClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model: c.Model,
		Messages: []ChatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.0,
		MaxTokens:   500,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[DEEPSEEK] 📤 Requesting model %s...", c.Model)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[DEEPSEEK] ❌ Request failed: %v", err)
		RecordUpstreamCall("deepseek", 0, time.Since(start), nil)
		return "", fmt.Errorf("request failed: %w", err)
	}

	elapsed := time.Since(start)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	log.Printf("[DEEPSEEK] ✓ Status %d (%.2f sec), %d bytes", resp.StatusCode, elapsed.Seconds(), len(body))

	if resp.StatusCode != http.StatusOK {
		log.Printf("[DEEPSEEK] ❌ Error %d: %s", resp.StatusCode, string(body))
		RecordUpstreamCall("deepseek", resp.StatusCode, elapsed, nil)
		return "", fmt.Errorf("API returned %d: %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		log.Printf("[DEEPSEEK] ❌ Malformed response envelope: %v", err)
		RecordUpstreamCall("deepseek", resp.StatusCode, elapsed, nil)
		return "", fmt.Errorf("parse response: %w", err)
	}

	RecordUpstreamCall("deepseek", resp.StatusCode, elapsed, &chatResp.Usage)

	if len(chatResp.Choices) == 0 {
		log.Printf("[DEEPSEEK] ⚠ Response has no choices, treating payload as empty")
		return "", nil
	}

	responseText := chatResp.Choices[0].Message.Content
	log.Printf("[DEEPSEEK] ✅ Reply received (%d chars)", len(responseText))
	log.Printf("[DEEPSEEK] 📊 Tokens: %d total (prompt: %d, completion: %d)",
		chatResp.Usage.TotalTokens, chatResp.Usage.PromptTokens, chatResp.Usage.CompletionTokens)

	return responseText, nil
}
