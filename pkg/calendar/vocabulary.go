package calendar

import (
	"strings"
	"unicode/utf8"

	"github.com/gridcal/gridcal/pkg/schedule"
)

const (
	iconF1      = "🏎️"
	iconGT      = "🏁"
	iconDefault = "🏆"
)

var categoryIcons = map[string]string{
	"f1": iconF1,
	"gt": iconGT,
}

// categoryOrder fixes the lookup order so inference never depends on map
// iteration order.
var categoryOrder = []string{"f1", "gt"}

var categoryKeywords = map[string][]string{
	"f1": {iconF1, "formula 1", "f1", "grand prix"},
	"gt": {iconGT, "gt", "grand touring", "endurance"},
}

// sessionOrder keeps "practice" ahead of "race": a session typed "Practice"
// would otherwise match the "race" substring.
var sessionOrder = []string{"practice", "qualifying", "sprint", "race"}

var sessionAliases = map[string][]string{
	"practice":   {"p1", "p2", "p3", "practice", "libres", "entrenamientos", "shakedown"},
	"qualifying": {"qualy", "qualifying", "clasificación", "pole", "pre-qualifying"},
	"sprint":     {"sprint"},
	"race":       {"carrera", "race", "grand prix"},
}

var sessionLabels = map[string]string{
	"practice":   "Practice",
	"qualifying": "Qualy",
	"sprint":     "Sprint",
	"race":       "Race",
}

// inferCategory guesses the racing category from the event name.
func inferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return "other"
}

// EventCategories returns the event's categories in lowercase. Events
// without explicit tags get a single category inferred from their name.
func EventCategories(event schedule.Event) []string {
	if len(event.Categories) > 0 {
		categories := make([]string, 0, len(event.Categories))
		for _, category := range event.Categories {
			categories = append(categories, strings.ToLower(strings.TrimSpace(category)))
		}
		return categories
	}
	return []string{inferCategory(event.Name)}
}

func eventIcon(categories []string) string {
	for _, category := range categories {
		if icon, ok := categoryIcons[category]; ok {
			return icon
		}
	}
	return iconDefault
}

// cleanName strips category icons already embedded in the event name so
// generated titles do not double them.
func cleanName(name string) string {
	for _, icon := range []string{iconF1, iconGT, iconDefault} {
		name = strings.ReplaceAll(name, icon, "")
	}
	return strings.TrimSpace(name)
}

// canonicalSession maps a free-form session type to one of the canonical
// session kinds, or "" when nothing matches.
func canonicalSession(sessionType string) string {
	lower := strings.ToLower(strings.TrimSpace(sessionType))
	if lower == "" {
		return ""
	}
	for _, kind := range sessionOrder {
		for _, alias := range sessionAliases[kind] {
			if strings.Contains(lower, alias) {
				return kind
			}
		}
	}
	return ""
}

// shortLabel picks the session label used in titles. The canonical label
// wins only when it is shorter than the raw type, so "Qualifying" becomes
// "Qualy" but "P2" stays "P2".
func shortLabel(sessionType string) string {
	raw := strings.TrimSpace(sessionType)
	kind := canonicalSession(raw)
	if kind == "" {
		return raw
	}
	label := sessionLabels[kind]
	if utf8.RuneCountInString(label) < utf8.RuneCountInString(raw) {
		return label
	}
	return raw
}

// KnownCategories lists the categories the generator recognizes, in
// inference order.
func KnownCategories() []string {
	return append([]string(nil), categoryOrder...)
}

// KnownSessions lists the canonical session kinds usable as filter values.
func KnownSessions() []string {
	return append([]string(nil), sessionOrder...)
}
