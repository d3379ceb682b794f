package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}
