package calendar

import "strings"

// Filter narrows a calendar build to selected categories and session kinds.
// The zero value matches everything.
type Filter struct {
	categories []string
	sessions   []string
}

// NewFilter builds a filter from raw query values. Each value may carry a
// comma separated list; blank entries are dropped.
func NewFilter(categories []string, sessions []string) Filter {
	return Filter{
		categories: normalizeList(categories),
		sessions:   normalizeList(sessions),
	}
}

func normalizeList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// MatchesCategories reports whether an event carrying the given categories
// passes the filter.
func (f Filter) MatchesCategories(categories []string) bool {
	if len(f.categories) == 0 {
		return true
	}
	for _, want := range f.categories {
		for _, have := range categories {
			if have == want {
				return true
			}
		}
	}
	return false
}

// MatchesSession reports whether a session type passes the filter. Known
// filter keys expand to their aliases, so "race" also selects sessions
// typed "Carrera"; unknown keys match by substring or shared canonical
// kind, so "qualy" still selects "Qualifying".
func (f Filter) MatchesSession(sessionType string) bool {
	if len(f.sessions) == 0 {
		return true
	}
	lower := strings.ToLower(strings.TrimSpace(sessionType))
	kind := canonicalSession(lower)
	for _, want := range f.sessions {
		aliases, known := sessionAliases[want]
		if known {
			for _, alias := range aliases {
				if strings.Contains(lower, alias) {
					return true
				}
			}
			continue
		}
		if strings.Contains(lower, want) {
			return true
		}
		if kind != "" && canonicalSession(want) == kind {
			return true
		}
	}
	return false
}

// FiltersSessions reports whether any session filter is active. All-day
// events have no sessions and are skipped entirely in that case.
func (f Filter) FiltersSessions() bool {
	return len(f.sessions) > 0
}
