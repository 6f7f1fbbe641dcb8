package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gridcal/gridcal/pkg/schedule"
)

// runValidate checks a schedule dataset and reports every problem found.
//
// Exit codes:
//   - 0: dataset is valid
//   - 1: dataset is unreadable, malformed, or invalid
//   - 2: usage error
func runValidate(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var file string
	flags.StringVar(&file, "file", "data/schedule.json", "path to the schedule dataset")
	flags.StringVar(&file, "f", "data/schedule.json", "path to the schedule dataset (shorthand)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(stderr, "Validation error: %v\n", err)
		return 1
	}

	events, err := schedule.Parse(data)
	if err != nil {
		reportScheduleError(stderr, file, err)
		return 1
	}

	sessions := 0
	for _, event := range events {
		sessions += len(event.Sessions)
	}
	fmt.Fprintf(stdout, "✓ %s is valid: %d events, %d sessions\n", file, len(events), sessions)
	return 0
}

func reportScheduleError(stderr io.Writer, file string, err error) {
	var parseErr *schedule.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintf(stderr, "Parse error in %s:\n  %v\n", file, err)
		return
	}
	fmt.Fprintf(stderr, "Validation error in %s:\n  %v\n", file, err)
}
