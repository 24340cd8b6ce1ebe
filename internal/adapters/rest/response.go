package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"cc-lostfound-service/internal/domain/shared"
)

// errorBody is the JSON envelope every failure response uses.
type errorBody struct {
	Error string `json:"error"`
}

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, errorBody{Error: message})
}

// decodeJSON decodes a JSON request body into target, enforcing the body cap.
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return shared.ErrRequestTooLarge
		}
		return shared.ErrInvalidRequest
	}
	return nil
}
