package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"rumor-checker/models"
	"rumor-checker/services"
	"rumor-checker/storage"
)

type AnalyzerHandler struct {
	service    *services.AnalyzerService
	logbook    *storage.RequestLogger
	corsOrigin string
}

func NewAnalyzerHandler(service *services.AnalyzerService, logbook *storage.RequestLogger, corsOrigin string) *AnalyzerHandler {
	return &AnalyzerHandler{
		service:    service,
		logbook:    logbook,
		corsOrigin: corsOrigin,
	}
}

// Analyze — POST /analyze, the single analysis endpoint.
func (h *AnalyzerHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	log.Printf("[HANDLER] 📥 %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

	h.setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// A malformed body reads the same as a missing statement.
	var req models.AnalysisRequest
	json.NewDecoder(r.Body).Decode(&req)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "No text provided.")
		return
	}

	result, err := h.service.AnalyzeStatement(r.Context(), text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DeepSeek API failed: "+err.Error())
		return
	}

	resultJSON, _ := json.Marshal(result)
	entry := models.LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		UserText:  text,
		Result:    string(resultJSON),
	}
	if err := h.logbook.Append(entry); err != nil {
		log.Printf("[HANDLER] ❌ Log append failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to write request log: "+err.Error())
		return
	}

	log.Printf("[HANDLER] ✅ Done in %v", time.Since(startTime))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(result)
}

// Health — GET /health.
func (h *AnalyzerHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Limits — GET /limits, telemetry about the upstream model provider.
func (h *AnalyzerHandler) Limits(w http.ResponseWriter, r *http.Request) {
	h.setCORS(w)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services.GetUpstreamUsage())
}

func (h *AnalyzerHandler) setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", h.corsOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
