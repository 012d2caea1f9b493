package handlers

import (
	"encoding/json"
	"net/http"
	"quotagate/internal/errors"
	"quotagate/internal/services"
)

// RegisterHandler handles credential registration requests
type RegisterHandler struct {
	credentialService services.CredentialService
}

func NewRegisterHandler(credentialService services.CredentialService) *RegisterHandler {
	return &RegisterHandler{
		credentialService: credentialService,
	}
}

// registerRequest represents the structure of a registration request
type registerRequest struct {
	Email string `json:"email"`
	Quota int    `json:"rate_limit"`
}

type registerResponse struct {
	APIKey    string `json:"api_key"`
	Email     string `json:"email"`
	RateLimit int    `json:"rate_limit"`
	Message   string `json:"message"`
}

// Register issues a new credential for an owner email. Each owner gets
// exactly one credential; registering twice is a conflict.
func (h *RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	credential, err := h.credentialService.Register(r.Context(), req.Email, req.Quota)
	if err != nil {
		switch {
		case errors.Is(err, errors.ErrDuplicateOwner):
			http.Error(w, "Email already registered", http.StatusConflict)
		case errors.Is(err, errors.ErrInvalidInput):
			http.Error(w, "Invalid email or rate limit", http.StatusBadRequest)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	resp := registerResponse{
		APIKey:    credential.Key,
		Email:     credential.OwnerEmail,
		RateLimit: credential.Quota,
		Message:   "API key created successfully!",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
