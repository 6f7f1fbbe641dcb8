package calendar

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gridcal/gridcal/pkg/schedule"
)

// broadcastChannels merges the session channel with the event level
// broadcasters, keeping the session channel first.
func broadcastChannels(event schedule.Event, session schedule.Session) []string {
	var channels []string
	if session.Channel != "" {
		channels = append(channels, session.Channel)
	}
	for _, broadcaster := range event.Broadcasters {
		if broadcaster != "" && !slices.Contains(channels, broadcaster) {
			channels = append(channels, broadcaster)
		}
	}
	return channels
}

// description renders the plain text body of a calendar entry.
func description(detail string, channels []string, location string, url string, notes string) string {
	var lines []string
	if detail != "" {
		lines = append(lines, detail)
	}
	if len(channels) > 0 {
		lines = append(lines, "📺 TV: "+strings.Join(channels, ", "))
	}
	if location != "" {
		lines = append(lines, "📍 "+location)
	}
	if url != "" {
		lines = append(lines, "🔗 "+url)
	}
	if notes != "" {
		lines = append(lines, "\n"+notes)
	}
	return strings.Join(lines, "\n")
}

// htmlDescription renders the X-ALT-DESC body for clients that prefer HTML.
func htmlDescription(detail string, channels []string, location string, url string, notes string) string {
	var b strings.Builder
	if detail != "" {
		b.WriteString(fmt.Sprintf("<b>%s</b><br>", detail))
	}
	if len(channels) > 0 {
		b.WriteString(fmt.Sprintf("📺 <b>TV:</b> %s<br>", strings.Join(channels, ", ")))
	}
	if location != "" {
		b.WriteString(fmt.Sprintf("📍 %s<br>", location))
	}
	if url != "" {
		b.WriteString(fmt.Sprintf("🔗 <a href='%s'>Info Oficial</a><br>", url))
	}
	if notes != "" {
		b.WriteString(fmt.Sprintf("<br><i>%s</i>", notes))
	}
	return b.String()
}
