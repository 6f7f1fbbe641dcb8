package calendar

import (
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/gridcal/gridcal/internal/config"
	"github.com/gridcal/gridcal/pkg/schedule"
	log "github.com/sirupsen/logrus"
)

// Generator renders a validated schedule as an iCalendar document.
type Generator struct {
	cfg config.Calendar
}

func NewGenerator(cfg config.Calendar) *Generator {
	return &Generator{cfg: cfg}
}

// Build turns the given events into a calendar, keeping only the entries
// accepted by the filter. Identical input always serializes to identical
// bytes; an event that cannot be rendered aborts the whole build.
func (g *Generator) Build(events []schedule.Event, filter Filter) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(g.cfg.ProdID)
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName(g.cfg.Name)
	if g.cfg.Description != "" {
		cal.SetXWRCalDesc(g.cfg.Description)
	}
	cal.SetXPublishedTTL(g.cfg.RefreshTTL)

	count := 0
	for i, event := range events {
		categories := EventCategories(event)
		if !filter.MatchesCategories(categories) {
			continue
		}
		icon := eventIcon(categories)
		name := cleanName(event.Name)

		if len(event.Sessions) > 0 {
			for j, session := range event.Sessions {
				if !filter.MatchesSession(session.Type) {
					continue
				}
				if err := g.addSession(cal, event, session, icon, name, sessionRecord(i, event, j)); err != nil {
					return nil, err
				}
				count++
			}
			continue
		}

		if filter.FiltersSessions() {
			continue
		}
		if err := g.addAllDay(cal, event, icon, name, eventRecord(i, event)); err != nil {
			return nil, err
		}
		count++
	}

	log.Debugf("Calendar built: %d entries", count)
	return cal, nil
}

func (g *Generator) addSession(cal *ics.Calendar, event schedule.Event, session schedule.Session, icon string, name string, record string) error {
	if session.Start.IsZero() {
		return &GenerationError{Record: record, Message: "session start time is missing"}
	}
	start := session.Start.UTC()
	end := start.Add(g.cfg.SessionLength)
	if session.End != nil {
		end = session.End.UTC()
	}
	if !end.After(start) {
		return &GenerationError{Record: record, Message: "session end is not after its start"}
	}

	summary := g.truncate(fmt.Sprintf("%s %s | %s", icon, shortLabel(session.Type), name))

	entry := cal.AddEvent(SessionUID(event.Name, session.Type, start, g.cfg.Domain))
	entry.SetDtStampTime(start)
	entry.SetSummary(summary)
	entry.SetStartAt(start)
	entry.SetEndAt(end)
	g.describe(entry, event, session.Type, broadcastChannels(event, session))
	g.decorate(entry, event)
	g.remind(entry, summary)
	return nil
}

func (g *Generator) addAllDay(cal *ics.Calendar, event schedule.Event, icon string, name string, record string) error {
	if event.Start == nil || event.End == nil {
		return &GenerationError{Record: record, Message: "event has neither sessions nor start/end dates"}
	}
	start := event.Start.UTC()
	end := event.End.UTC()
	if end.Before(start) {
		return &GenerationError{Record: record, Message: "event end is before its start"}
	}

	summary := g.truncate(fmt.Sprintf("%s %s", icon, name))

	entry := cal.AddEvent(EventUID(event.Name, start, g.cfg.Domain))
	entry.SetDtStampTime(start)
	entry.SetSummary(summary)
	entry.SetAllDayStartAt(start)
	// DTEND is exclusive for all-day entries
	entry.SetAllDayEndAt(end.AddDate(0, 0, 1))
	g.describe(entry, event, name, broadcastChannels(event, schedule.Session{}))
	g.decorate(entry, event)
	g.remind(entry, summary)
	return nil
}

func (g *Generator) describe(entry *ics.VEvent, event schedule.Event, detail string, channels []string) {
	entry.SetDescription(description(detail, channels, event.Location, event.URL, event.Description))
	entry.SetProperty(ics.ComponentProperty("X-ALT-DESC"),
		htmlDescription(detail, channels, event.Location, event.URL, event.Description),
		&ics.KeyValues{Key: "FMTTYPE", Value: []string{"text/html"}})
}

func (g *Generator) decorate(entry *ics.VEvent, event schedule.Event) {
	if event.Location != "" {
		entry.SetLocation(event.Location)
	}
	if event.URL != "" {
		entry.SetURL(event.URL)
	}
	if len(event.Categories) > 0 {
		entry.SetProperty(ics.ComponentPropertyCategories, strings.Join(event.Categories, ","))
	}
	entry.SetStatus(objectStatus(event.Status))
	entry.SetSequence(event.Sequence)
	entry.SetTimeTransparency(ics.TransparencyTransparent)
}

// remind attaches the 15 minute display alarm carried by every entry.
func (g *Generator) remind(entry *ics.VEvent, summary string) {
	alarm := entry.AddAlarm()
	alarm.SetAction(ics.ActionDisplay)
	alarm.SetProperty(ics.ComponentPropertyDescription, "Arranca: "+summary)
	alarm.SetTrigger("-PT15M")
}

// truncate shortens a title to the configured rune limit, marking the cut
// with an ellipsis. A limit of zero disables truncation.
func (g *Generator) truncate(title string) string {
	if g.cfg.TitleLimit <= 0 {
		return title
	}
	runes := []rune(title)
	if len(runes) <= g.cfg.TitleLimit {
		return title
	}
	return string(runes[:g.cfg.TitleLimit-1]) + "…"
}

func objectStatus(status schedule.Status) ics.ObjectStatus {
	switch status {
	case schedule.StatusCancelled:
		return ics.ObjectStatusCancelled
	case schedule.StatusTentative:
		return ics.ObjectStatusTentative
	default:
		return ics.ObjectStatusConfirmed
	}
}

func eventRecord(index int, event schedule.Event) string {
	if event.Name != "" {
		return fmt.Sprintf("event %d %q", index+1, event.Name)
	}
	return fmt.Sprintf("event %d", index+1)
}

func sessionRecord(index int, event schedule.Event, sessionIndex int) string {
	return fmt.Sprintf("%s, session %d", eventRecord(index, event), sessionIndex+1)
}
