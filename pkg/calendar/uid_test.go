package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionUID_StableAcrossTimeShift(t *testing.T) {
	morning := time.Date(2026, 6, 13, 13, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 6, 13, 16, 0, 0, 0, time.UTC)

	first := SessionUID("GP España", "Qualifying", morning, "gridcal.app")
	shifted := SessionUID("GP España", "Qualifying", evening, "gridcal.app")

	assert.Equal(t, first, shifted)
}

func TestSessionUID_DistinguishesSessionsAndDays(t *testing.T) {
	day := time.Date(2026, 6, 13, 13, 0, 0, 0, time.UTC)

	qualy := SessionUID("GP España", "Qualifying", day, "gridcal.app")
	race := SessionUID("GP España", "Race", day, "gridcal.app")
	nextDay := SessionUID("GP España", "Qualifying", day.AddDate(0, 0, 1), "gridcal.app")
	otherEvent := SessionUID("GP Monza", "Qualifying", day, "gridcal.app")

	assert.NotEqual(t, qualy, race)
	assert.NotEqual(t, qualy, nextDay)
	assert.NotEqual(t, qualy, otherEvent)
}

func TestSessionUID_NormalizesZones(t *testing.T) {
	zone := time.FixedZone("CEST", 2*60*60)
	local := time.Date(2026, 6, 13, 15, 0, 0, 0, zone)

	assert.Equal(t,
		SessionUID("GP España", "Race", local.UTC(), "gridcal.app"),
		SessionUID("GP España", "Race", local, "gridcal.app"))
}

func TestSessionUID_Format(t *testing.T) {
	day := time.Date(2026, 6, 13, 13, 0, 0, 0, time.UTC)

	uid := SessionUID("GP España", "Qualifying", day, "gridcal.app")

	assert.True(t, strings.HasSuffix(uid, "@gridcal.app"))
	parsed, err := uuid.Parse(strings.TrimSuffix(uid, "@gridcal.app"))
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}

func TestEventUID_DiffersFromSessionUIDs(t *testing.T) {
	day := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	eventUID := EventUID("24H Series Barcelona", day, "gridcal.app")

	assert.NotEqual(t, SessionUID("24H Series Barcelona", "Race", day, "gridcal.app"), eventUID)
	assert.Equal(t, SessionUID("24H Series Barcelona", "main", day, "gridcal.app"), eventUID)
}
