package schedule

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gridcal/gridcal/internal/rest"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	loader Loader
}

type EventDTO struct {
	Name         string       `json:"name"`
	Location     string       `json:"location,omitempty"`
	Description  string       `json:"description,omitempty"`
	URL          string       `json:"url,omitempty"`
	Categories   []string     `json:"categories,omitempty"`
	Broadcasters []string     `json:"broadcasters,omitempty"`
	Status       Status       `json:"status"`
	Sequence     int          `json:"sequence"`
	Start        *time.Time   `json:"start,omitempty"`
	End          *time.Time   `json:"end,omitempty"`
	Sessions     []SessionDTO `json:"sessions"`
}

type SessionDTO struct {
	Type    string     `json:"type"`
	Time    time.Time  `json:"time"`
	End     *time.Time `json:"end,omitempty"`
	Channel string     `json:"channel,omitempty"`
}

func NewHandler(loader Loader) *Handler {
	return &Handler{
		loader: loader,
	}
}

// GetSchedule godoc
// @Summary Get the race schedule
// @Description Retrieve the validated season schedule as JSON
// @Tags Schedule
// @Produce json
// @Success 200 {array} EventDTO
// @Failure 500 {object} rest.ErrorResponse "Dataset unreadable or invalid"
// @Router /api/schedule [get]
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Getting schedule")

	events, err := h.loader.Load(r.Context())
	if err != nil {
		log.Errorf("failed to load schedule: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Schedule dataset is not available",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Tracef("Schedule returned: %d events", len(dtos))
}

func eventToDTO(e Event) EventDTO {
	sessions := make([]SessionDTO, 0, len(e.Sessions))
	for _, s := range e.Sessions {
		sessions = append(sessions, sessionToDTO(s))
	}
	return EventDTO{
		Name:         e.Name,
		Location:     e.Location,
		Description:  e.Description,
		URL:          e.URL,
		Categories:   e.Categories,
		Broadcasters: e.Broadcasters,
		Status:       e.Status,
		Sequence:     e.Sequence,
		Start:        e.Start,
		End:          e.End,
		Sessions:     sessions,
	}
}

func sessionToDTO(s Session) SessionDTO {
	return SessionDTO{
		Type:    s.Type,
		Time:    s.Start,
		End:     s.End,
		Channel: s.Channel,
	}
}
