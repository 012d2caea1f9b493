package handlers

import (
	"encoding/json"
	"net/http"
	"quotagate/internal/errors"
	"quotagate/internal/models"
	"quotagate/internal/services"
	"strconv"
)

type UsageLogHandler struct {
	usageLogService services.UsageLogService
}

func NewUsageLogHandler(usageLogService services.UsageLogService) *UsageLogHandler {
	return &UsageLogHandler{
		usageLogService: usageLogService,
	}
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Endpoint  string `json:"endpoint"`
	Status    string `json:"status"`
}

type usageLogResponse struct {
	TotalLogs int        `json:"total_logs"`
	Logs      []logEntry `json:"logs"`
}

// GetLogs returns the caller's recent admission decisions, newest first.
func (h *UsageLogHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	apiKey := r.Header.Get("X-API-Key")
	if apiKey == "" {
		http.Error(w, "API key is required", http.StatusUnauthorized)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	records, err := h.usageLogService.ListUsage(r.Context(), apiKey, limit)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCredential) {
			http.Error(w, "Invalid API key", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Error fetching logs", http.StatusInternalServerError)
		return
	}

	resp := usageLogResponse{
		TotalLogs: len(records),
		Logs:      make([]logEntry, 0, len(records)),
	}
	for _, record := range records {
		resp.Logs = append(resp.Logs, logEntry{
			Timestamp: record.Timestamp.Format("2006-01-02 15:04:05"),
			Endpoint:  record.Endpoint,
			Status:    statusLabel(record.Outcome),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func statusLabel(outcome models.Outcome) string {
	if outcome == models.OutcomeAdmitted {
		return "success"
	}
	return "rate_limit_exceeded"
}
