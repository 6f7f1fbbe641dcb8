package app

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/gridcal/gridcal/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Calendar feed
	r.HandleFunc("/calendar.ics", deps.CalendarHandler.GetCalendar).Methods("GET")

	// Schedule API
	r.HandleFunc("/api/schedule", deps.ScheduleHandler.GetSchedule).Methods("GET")
	r.HandleFunc("/api/categories", deps.CalendarHandler.GetCategories).Methods("GET")

	// Health
	r.HandleFunc("/api/health", healthHandler(deps.Clock)).Methods("GET")

	// Raw dataset
	dataDir := filepath.Dir(cfg.Data.Path)
	r.PathPrefix("/data/").Handler(http.StripPrefix("/data/", http.FileServer(http.Dir(dataDir)))).Methods("GET")
}
