package schedule

import "time"

// Event is one competition round of the season: a race weekend with its
// timed sessions, or a pair of all-day dates when no session times are
// published yet.
type Event struct {
	Name         string
	Location     string
	Description  string
	URL          string
	Categories   []string
	Broadcasters []string
	Status       Status
	Sequence     int
	Start        *time.Time
	End          *time.Time
	Sessions     []Session
}

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusTentative Status = "TENTATIVE"
	StatusCancelled Status = "CANCELLED"
)

// Session is a single timed activity within an event. End is optional; the
// calendar generator applies a fixed duration when it is absent.
type Session struct {
	Type    string
	Start   time.Time
	End     *time.Time
	Channel string
}

// AllDay reports whether the event is published as full days without
// session times.
func (e Event) AllDay() bool {
	return len(e.Sessions) == 0 && e.Start != nil && e.End != nil
}
