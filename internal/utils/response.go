package utils

import (
	"encoding/json"
	"net/http"
)

// Message is the body shape used for confirmations and every error response.
type Message struct {
	Message string `json:"message"`
}

// JSONResponse sends v as a JSON response with the given status.
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorResponse sends a {"message": ...} body with the given status.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, Message{Message: message})
}
