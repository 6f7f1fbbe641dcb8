package calendar

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// allDayKind seeds UIDs for events that have no timed sessions.
const allDayKind = "main"

// SessionUID derives a stable identifier for one session of an event. The
// seed uses the event name, the session type and the start date only; the
// start time does not contribute, so a session rescheduled within the same
// day keeps its UID.
func SessionUID(eventName string, sessionType string, day time.Time, domain string) string {
	seed := fmt.Sprintf("%s|%s|%s", eventName, sessionType, day.UTC().Format("2006-01-02"))
	return fmt.Sprintf("%s@%s", uuid.NewSHA1(uuid.NameSpaceDNS, []byte(seed)), domain)
}

// EventUID derives the identifier for an all-day event entry.
func EventUID(eventName string, day time.Time, domain string) string {
	return SessionUID(eventName, allDayKind, day, domain)
}
