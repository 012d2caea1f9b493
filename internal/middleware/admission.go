package middleware

import (
	"net/http"
	"quotagate/internal/errors"
	"quotagate/internal/models"
	"quotagate/internal/services"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// AdmissionMiddleware gates every request through the admission engine using
// the X-API-Key header. Denied requests get 429 with rate-limit headers; an
// unknown key gets 401; storage failures fail closed with 503.
func AdmissionMiddleware(admissionService services.AdmissionService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("X-API-Key")
			if apiKey == "" {
				http.Error(w, "API key is required", http.StatusUnauthorized)
				return
			}

			decision, err := admissionService.Check(r.Context(), apiKey, r.URL.Path, time.Now())
			if err != nil {
				if errors.Is(err, errors.ErrInvalidCredential) {
					http.Error(w, "Invalid API key", http.StatusUnauthorized)
					return
				}
				http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
				return
			}

			setRateLimitHeaders(w, decision)

			if decision.Outcome != models.OutcomeAdmitted {
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setRateLimitHeaders(w http.ResponseWriter, decision *services.Decision) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Quota))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
}
