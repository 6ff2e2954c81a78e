package services

import (
	"strconv"
	"sync"
	"time"

	"rumor-checker/models"
)

// UpstreamUsage holds the latest call telemetry for one model provider.
type UpstreamUsage struct {
	Provider      string `json:"provider"`
	TotalRequests int    `json:"total_requests"`
	StatusCode    int    `json:"status_code"` // last HTTP status, 0 = transport failure
	Throttled     bool   `json:"throttled"`   // true if last response was 429
	LastLatencyMs int64  `json:"last_latency_ms"`

	// Token counts from the last successful reply.
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	UpdatedAt  int64  `json:"updated_at"` // unix ms
	UpdatedAgo string `json:"updated_ago"`
}

var (
	usageMu    sync.RWMutex
	usageStore = map[string]*UpstreamUsage{}
)

// RecordUpstreamCall stores the outcome of one outbound model call.
func RecordUpstreamCall(provider string, statusCode int, latency time.Duration, usage *models.TokenUsage) {
	usageMu.Lock()
	defer usageMu.Unlock()

	info := usageStore[provider]
	if info == nil {
		info = &UpstreamUsage{Provider: provider}
		usageStore[provider] = info
	}

	info.TotalRequests++
	info.StatusCode = statusCode
	info.Throttled = statusCode == 429
	info.LastLatencyMs = latency.Milliseconds()
	info.UpdatedAt = time.Now().UnixMilli()

	if usage != nil {
		info.PromptTokens = usage.PromptTokens
		info.CompletionTokens = usage.CompletionTokens
		info.TotalTokens = usage.TotalTokens
	}
}

// GetUpstreamUsage returns a snapshot of all stored telemetry.
func GetUpstreamUsage() map[string]*UpstreamUsage {
	usageMu.RLock()
	defer usageMu.RUnlock()

	out := map[string]*UpstreamUsage{}
	now := time.Now()
	for k, v := range usageStore {
		cp := *v
		ago := now.Sub(time.UnixMilli(v.UpdatedAt))
		switch {
		case ago < time.Minute:
			cp.UpdatedAgo = strconv.Itoa(int(ago.Seconds())) + "s ago"
		default:
			cp.UpdatedAgo = strconv.Itoa(int(ago.Minutes())) + "m ago"
		}
		out[k] = &cp
	}
	return out
}
