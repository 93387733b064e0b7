package controller

import (
    "encoding/json"
    "net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

// writeError emits the {success:false, error} shape used for validation
// failures and bad request bodies.
func writeError(w http.ResponseWriter, status int, msg string) {
    writeJSON(w, status, map[string]any{
        "success": false,
        "error":   msg,
    })
}

// writeInternal emits the 500 shape, carrying the failure's message text.
func writeInternal(w http.ResponseWriter, err error) {
    writeJSON(w, http.StatusInternalServerError, map[string]any{
        "success": false,
        "error":   "internal server error",
        "message": err.Error(),
    })
}
