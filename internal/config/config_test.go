package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Frontend.Enabled)
	assert.Equal(t, "public", cfg.Frontend.Dir)
	assert.Equal(t, "data/schedule.json", cfg.Data.Path)
	assert.Equal(t, "Racing Schedule", cfg.Calendar.Name)
	assert.Equal(t, "gridcal.app", cfg.Calendar.Domain)
	assert.Equal(t, "PT1H", cfg.Calendar.RefreshTTL)
	assert.Equal(t, "racing_schedule.ics", cfg.Calendar.Filename)
	assert.Equal(t, time.Hour, cfg.Calendar.SessionLength)
	assert.Equal(t, 60, cfg.Calendar.TitleLimit)
}

func TestLoad_FromFile(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := []byte(`server:
  addr: ":9090"
calendar:
  name: "GT Only"
  sessionlength: "90m"
`)
	err := os.WriteFile(path, content, 0o644)
	assert.NoError(t, err)

	cfg, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "GT Only", cfg.Calendar.Name)
	assert.Equal(t, 90*time.Minute, cfg.Calendar.SessionLength)
	// Values absent from the file keep their defaults
	assert.Equal(t, "data/schedule.json", cfg.Data.Path)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	// Setup
	t.Setenv("GRIDCAL_SERVER_ADDR", ":7070")
	t.Setenv("GRIDCAL_DATA_PATH", "/tmp/season.json")
	t.Setenv("GRIDCAL_CALENDAR_SESSIONLENGTH", "45m")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "/tmp/season.json", cfg.Data.Path)
	assert.Equal(t, 45*time.Minute, cfg.Calendar.SessionLength)
}
