package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"
	"github.com/gridcal/gridcal/internal/config"
	"github.com/gridcal/gridcal/pkg/calendar"
	"github.com/gridcal/gridcal/pkg/schedule"
)

// runGenerate validates a schedule dataset and writes its iCalendar
// rendition. Nothing is written when the dataset does not validate.
func runGenerate(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var file, out, cats, sessions string
	flags.StringVar(&file, "file", "data/schedule.json", "path to the schedule dataset")
	flags.StringVar(&file, "f", "data/schedule.json", "path to the schedule dataset (shorthand)")
	flags.StringVar(&out, "out", "racing_schedule.ics", "path of the calendar file to write")
	flags.StringVar(&out, "o", "racing_schedule.ics", "path of the calendar file to write (shorthand)")
	flags.StringVar(&cats, "cats", "", "comma separated category filter (f1, gt)")
	flags.StringVar(&sessions, "sessions", "", "comma separated session filter (race, qualy)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
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

	filter := calendar.NewFilter([]string{cats}, []string{sessions})
	cal, err := calendar.NewGenerator(cfg.Calendar).Build(events, filter)
	if err != nil {
		fmt.Fprintf(stderr, "Generation error: %v\n", err)
		return 1
	}

	if err := writeAtomically(out, cal.Serialize()); err != nil {
		fmt.Fprintf(stderr, "Write error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "✓ wrote %s (%d entries)\n", out, len(cal.Events()))
	return 0
}

func writeAtomically(path string, content string) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("failed to create pending file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if _, err := io.WriteString(pending, content); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return pending.CloseAtomicallyReplace()
}
