package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ValidateRequest rejects malformed request envelopes before handlers see
// them: JSON content type and a non-empty body for mutations, and a body
// size cap for everything.
func ValidateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			contentType := r.Header.Get("Content-Type")
			if contentType != "" && !strings.Contains(contentType, "application/json") {
				writeValidationError(w, "Invalid Content-Type, expected application/json")
				return
			}

			if r.ContentLength == 0 {
				writeValidationError(w, "Request body cannot be empty")
				return
			}
		}

		const maxSize = 10 << 20 // 10 MB
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)

		next.ServeHTTP(w, r)
	})
}

func writeValidationError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
