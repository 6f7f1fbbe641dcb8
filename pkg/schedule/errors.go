package schedule

import (
	"fmt"
	"strings"
)

// ParseError reports a syntax failure in the raw dataset together with the
// position of the offending byte.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("schedule is not valid JSON at line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError names one semantically invalid field of one record.
type FieldError struct {
	Record  string
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Record, e.Field, e.Message)
}

// ValidationError bundles every field error found in one validation pass.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return "invalid schedule: " + e.Fields[0].Error()
	}
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Error())
	}
	return fmt.Sprintf("invalid schedule (%d problems): %s", len(e.Fields), strings.Join(messages, "; "))
}
