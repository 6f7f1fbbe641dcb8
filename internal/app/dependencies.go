package app

import (
	"github.com/gridcal/gridcal/internal/config"
	"github.com/gridcal/gridcal/internal/utils"
	"github.com/gridcal/gridcal/pkg/calendar"
	"github.com/gridcal/gridcal/pkg/schedule"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	ScheduleLoader  schedule.Loader
	ScheduleHandler *schedule.Handler

	CalendarGenerator *calendar.Generator
	CalendarHandler   *calendar.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.ScheduleLoader = schedule.NewFileLoader(cfg.Data.Path)
	deps.ScheduleHandler = schedule.NewHandler(deps.ScheduleLoader)

	deps.CalendarGenerator = calendar.NewGenerator(cfg.Calendar)
	deps.CalendarHandler = calendar.NewHandler(deps.ScheduleLoader, deps.CalendarGenerator, cfg.Calendar)

	return deps
}
