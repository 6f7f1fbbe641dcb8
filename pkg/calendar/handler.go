package calendar

import (
	"encoding/json"
	"net/http"

	"github.com/gridcal/gridcal/internal/config"
	"github.com/gridcal/gridcal/internal/rest"
	"github.com/gridcal/gridcal/pkg/schedule"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	loader    schedule.Loader
	generator *Generator
	cfg       config.Calendar
}

type CategoriesDTO struct {
	Categories []string `json:"categories"`
	Sessions   []string `json:"sessions"`
}

func NewHandler(loader schedule.Loader, generator *Generator, cfg config.Calendar) *Handler {
	return &Handler{
		loader:    loader,
		generator: generator,
		cfg:       cfg,
	}
}

// GetCalendar godoc
// @Summary Get the calendar feed
// @Description Render the season schedule as an iCalendar document for subscription
// @Tags Calendar
// @Produce text/calendar
// @Param cats query []string false "Category filter: f1, gt"
// @Param sessions query []string false "Session filter: race, qualy"
// @Success 200 {string} string "iCalendar document"
// @Failure 500 {object} rest.ErrorResponse "Dataset unreadable or invalid"
// @Router /calendar.ics [get]
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := NewFilter(query["cats"], query["sessions"])
	log.Debug("Getting calendar feed")

	events, err := h.loader.Load(r.Context())
	if err != nil {
		log.Errorf("failed to load schedule: %v", err)
		writeError(w, "Schedule dataset is not available", err)
		return
	}

	cal, err := h.generator.Build(events, filter)
	if err != nil {
		log.Errorf("failed to build calendar: %v", err)
		writeError(w, "Calendar generation failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+h.cfg.Filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		log.Errorf("failed to write calendar response: %v", err)
	}
}

// GetCategories godoc
// @Summary List filterable categories and session kinds
// @Tags Calendar
// @Produce json
// @Success 200 {object} CategoriesDTO
// @Router /api/categories [get]
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Getting filter vocabulary")

	dto := CategoriesDTO{
		Categories: KnownCategories(),
		Sessions:   KnownSessions(),
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func writeError(w http.ResponseWriter, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: err.Error(),
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}
