package app

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gridcal/gridcal/internal/utils"
)

type healthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// healthHandler godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} healthStatus
// @Router /api/health [get]
func healthHandler(clock utils.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		status := healthStatus{
			Status:    "ok",
			Timestamp: clock.Now().UTC(),
		}
		if err := json.NewEncoder(w).Encode(status); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}
