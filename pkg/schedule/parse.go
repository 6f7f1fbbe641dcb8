package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Wire format of the dataset. Unknown fields are ignored on purpose: adding
// a field to the dataset must not break older readers.
type rawEvent struct {
	Name         string       `json:"name"`
	Location     string       `json:"location"`
	Description  string       `json:"description"`
	URL          string       `json:"url"`
	Categories   []string     `json:"categories"`
	Broadcasters []string     `json:"broadcasters"`
	Status       string       `json:"status"`
	Sequence     int          `json:"sequence"`
	Start        string       `json:"start"`
	End          string       `json:"end"`
	Sessions     []rawSession `json:"sessions"`
}

type rawSession struct {
	Type    string `json:"type"`
	Time    string `json:"time"`
	End     string `json:"end"`
	Channel string `json:"channel"`
}

// Parse decodes and validates a raw schedule dataset in one pass. A syntax
// failure yields a *ParseError locating the offending byte; semantic
// failures are collected into a single *ValidationError naming every broken
// record. Generation must never run on input that did not pass here.
func Parse(data []byte) ([]Event, error) {
	var raw []rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, decodeError(data, err)
	}
	return validate(raw)
}

func decodeError(data []byte, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, column := locate(data, syntaxErr.Offset)
		return &ParseError{Line: line, Column: column, Err: err}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, column := locate(data, typeErr.Offset)
		field := typeErr.Field
		if field == "" {
			field = "dataset"
		}
		return &ValidationError{Fields: []FieldError{{
			Record:  fmt.Sprintf("line %d, column %d", line, column),
			Field:   field,
			Message: fmt.Sprintf("holds an unexpected JSON %s", typeErr.Value),
		}}}
	}
	return &ParseError{Line: 1, Column: 1, Err: err}
}

// locate converts a byte offset from the json decoder into a 1-based line
// and column pair.
func locate(data []byte, offset int64) (line int, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = 1 + bytes.Count(prefix, []byte("\n"))
	if i := bytes.LastIndexByte(prefix, '\n'); i >= 0 {
		column = int(offset) - i
	} else {
		column = int(offset)
	}
	if column == 0 {
		column = 1
	}
	return line, column
}

func validate(raw []rawEvent) ([]Event, error) {
	events := make([]Event, 0, len(raw))
	var problems []FieldError

	for i, re := range raw {
		record := recordName(i, re.Name)

		event := Event{
			Name:         strings.TrimSpace(re.Name),
			Location:     strings.TrimSpace(re.Location),
			Description:  strings.TrimSpace(re.Description),
			URL:          strings.TrimSpace(re.URL),
			Categories:   re.Categories,
			Broadcasters: re.Broadcasters,
			Sequence:     re.Sequence,
		}

		if event.Name == "" {
			problems = append(problems, FieldError{Record: record, Field: "name", Message: "is required"})
		}

		status, err := parseStatus(re.Status)
		if err != nil {
			problems = append(problems, FieldError{Record: record, Field: "status", Message: err.Error()})
		}
		event.Status = status

		if re.Sequence < 0 {
			problems = append(problems, FieldError{Record: record, Field: "sequence", Message: "must not be negative"})
		}

		if len(re.Sessions) == 0 && (re.Start == "" || re.End == "") {
			problems = append(problems, FieldError{Record: record, Field: "sessions", Message: "are missing and no all-day start/end dates are set"})
		}

		if re.Start != "" {
			if t, err := parseTimestamp(re.Start); err != nil {
				problems = append(problems, FieldError{Record: record, Field: "start", Message: err.Error()})
			} else {
				event.Start = &t
			}
		}
		if re.End != "" {
			if t, err := parseTimestamp(re.End); err != nil {
				problems = append(problems, FieldError{Record: record, Field: "end", Message: err.Error()})
			} else {
				event.End = &t
			}
		}
		if event.Start != nil && event.End != nil && event.End.Before(*event.Start) {
			problems = append(problems, FieldError{Record: record, Field: "end", Message: "must not be before start"})
		}

		for j, rs := range re.Sessions {
			sessionRecord := fmt.Sprintf("%s, session %d", record, j+1)
			session := Session{
				Type:    strings.TrimSpace(rs.Type),
				Channel: strings.TrimSpace(rs.Channel),
			}

			if session.Type == "" {
				problems = append(problems, FieldError{Record: sessionRecord, Field: "type", Message: "is required"})
			}

			if rs.Time == "" {
				problems = append(problems, FieldError{Record: sessionRecord, Field: "time", Message: "is required"})
			} else if t, err := parseTimestamp(rs.Time); err != nil {
				problems = append(problems, FieldError{Record: sessionRecord, Field: "time", Message: err.Error()})
			} else {
				session.Start = t
			}

			if rs.End != "" {
				if t, err := parseTimestamp(rs.End); err != nil {
					problems = append(problems, FieldError{Record: sessionRecord, Field: "end", Message: err.Error()})
				} else if !session.Start.IsZero() && !t.After(session.Start) {
					problems = append(problems, FieldError{Record: sessionRecord, Field: "end", Message: "must be after time"})
				} else {
					session.End = &t
				}
			}

			event.Sessions = append(event.Sessions, session)
		}

		events = append(events, event)
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}
	return events, nil
}

func recordName(index int, name string) string {
	if strings.TrimSpace(name) == "" {
		return fmt.Sprintf("event %d", index+1)
	}
	return fmt.Sprintf("event %d %q", index+1, strings.TrimSpace(name))
}

func parseStatus(value string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(value)))
	switch status {
	case StatusConfirmed, StatusTentative, StatusCancelled:
		return status, nil
	case "":
		return StatusConfirmed, nil
	default:
		return "", fmt.Errorf("must be one of CONFIRMED, TENTATIVE, CANCELLED (got %q)", value)
	}
}

// timestampFormats are tried in order. Formats without zone information are
// taken as UTC, matching the dataset contract.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("is empty")
	}
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("is not a valid timestamp: %q", value)
}
