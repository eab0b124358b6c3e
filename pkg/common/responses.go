package common

import (
	"encoding/json"
	"net/http"
)

// RespondJSON sends data as the response body without an envelope
func RespondJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}
