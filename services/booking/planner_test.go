package booking

import (
	"testing"
	"time"

	"bookwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, from time.Time, status models.EntryStatus) models.ScheduleEntry {
	return models.ScheduleEntry{ID: id, From: from, To: from.Add(30 * time.Minute), Status: status}
}

func TestBookableSlots_Window(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	at := func(day, hour int) time.Time { return time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC) }

	days := []models.SlotDay{
		{ProviderID: "P1", Date: "2024-05-31", Schedule: []models.ScheduleEntry{entry("yesterday", time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC), models.EntryFree)}},
		{ProviderID: "P1", Date: "2024-06-02", Schedule: []models.ScheduleEntry{entry("tomorrow", at(2, 9), models.EntryFree)}},
		{ProviderID: "P1", Date: "2024-06-01", Schedule: []models.ScheduleEntry{
			entry("today10", at(1, 10), models.EntryFree),
			entry("today08", at(1, 8), models.EntryFree),
		}},
	}

	got := BookableSlots(days, asOf, time.UTC)
	require.Len(t, got, 2)
	assert.Equal(t, "today10", got[0].Entry.ID)
	assert.Equal(t, "2024-06-01", got[0].Date)
	assert.Equal(t, "tomorrow", got[1].Entry.ID)
}

func TestBookableSlots_ExcludesBooked(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	future := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	days := []models.SlotDay{{ProviderID: "P1", Date: "2024-06-10", Schedule: []models.ScheduleEntry{
		entry("taken", future, models.EntryBooked),
		entry("open", future.Add(time.Hour), models.EntryFree),
	}}}

	got := BookableSlots(days, asOf, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, "open", got[0].Entry.ID)
}

func TestBookableSlots_EntryStartingNowIsBookable(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	days := []models.SlotDay{{Date: "2024-06-01", Schedule: []models.ScheduleEntry{entry("now", asOf, models.EntryFree)}}}

	assert.Len(t, BookableSlots(days, asOf, time.UTC), 1)
}

func TestBookableSlots_TodayFollowsLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC on May 31 is already June 1 in Kolkata, so May 31 is in the past there.
	asOf := time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC)
	days := []models.SlotDay{
		{Date: "2024-05-31", Schedule: []models.ScheduleEntry{entry("late", asOf.Add(time.Hour), models.EntryFree)}},
		{Date: "2024-06-01", Schedule: []models.ScheduleEntry{entry("next", asOf.Add(2*time.Hour), models.EntryFree)}},
	}

	utc := BookableSlots(days, asOf, time.UTC)
	assert.Len(t, utc, 2)

	local := BookableSlots(days, asOf, kolkata)
	require.Len(t, local, 1)
	assert.Equal(t, "next", local[0].Entry.ID)
}

func TestBookableSlots_Empty(t *testing.T) {
	got := BookableSlots(nil, time.Now(), time.UTC)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
