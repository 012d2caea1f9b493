package handlers

import (
	"encoding/json"
	"net/http"
	"quotagate/internal/errors"
	"quotagate/internal/models"
	"quotagate/internal/services"
	"strconv"
	"time"
)

// AdmissionHandler exposes the admission engine over HTTP: one check per
// request, identified by the X-API-Key header.
type AdmissionHandler struct {
	admissionService services.AdmissionService
}

func NewAdmissionHandler(admissionService services.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{
		admissionService: admissionService,
	}
}

type checkResponse struct {
	CurrentUsage int    `json:"current_usage"`
	RateLimit    int    `json:"rate_limit"`
	Remaining    int    `json:"remaining"`
	Status       string `json:"status"`
}

// CheckLimit runs one admission check against the caller's credential and
// reports the decision. Denied attempts are still recorded in the ledger.
func (h *AdmissionHandler) CheckLimit(w http.ResponseWriter, r *http.Request) {
	apiKey := r.Header.Get("X-API-Key")
	if apiKey == "" {
		http.Error(w, "API key is required", http.StatusUnauthorized)
		return
	}

	decision, err := h.admissionService.Check(r.Context(), apiKey, r.URL.Path, time.Now())
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCredential) {
			http.Error(w, "Invalid API key", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Quota))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

	if decision.Outcome == models.OutcomeDenied {
		http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	resp := checkResponse{
		CurrentUsage: decision.UsedCount,
		RateLimit:    decision.Quota,
		Remaining:    decision.Remaining,
		Status:       "allowed",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
