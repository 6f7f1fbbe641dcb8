package calendar

import "fmt"

// GenerationError reports an event that passed validation but cannot be
// turned into a calendar entry.
type GenerationError struct {
	Record  string
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("calendar generation failed on %s: %s", e.Record, e.Message)
}
