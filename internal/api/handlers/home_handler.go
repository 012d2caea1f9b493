package handlers

import (
	"encoding/json"
	"net/http"
)

// Home lists the available endpoints.
func Home(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"message": "API Rate Limiter",
		"endpoints": map[string]string{
			"POST /register":   "Register new API key",
			"GET /check-limit": "Check your rate limit (requires X-API-Key header)",
			"GET /logs":        "View your usage logs (requires X-API-Key header)",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
