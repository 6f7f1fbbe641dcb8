package schedule

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// Loader provides the current schedule dataset.
type Loader interface {
	Load(ctx context.Context) ([]Event, error)
}

// FileLoader reads and validates the dataset from disk on every call, so a
// replaced file is picked up without a restart.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Load(ctx context.Context) ([]Event, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("Schedule dataset not found at %s, serving an empty season", l.path)
			return []Event{}, nil
		}
		return nil, fmt.Errorf("failed to read schedule dataset: %w", err)
	}

	events, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule dataset %s: %w", l.path, err)
	}
	return events, nil
}
