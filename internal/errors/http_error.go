package errors

import (
	"encoding/json"
	"net/http"
)

// WriteJSON emits the error as a JSON body with its status code.
func WriteJSON(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
