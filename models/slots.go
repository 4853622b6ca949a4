package models

import "time"

// DateLayout is the calendar-day format used as part of a slot's identity.
const DateLayout = "2006-01-02"

// EntryStatus is the booking state of a schedule entry. It only ever moves
// from free to booked.
type EntryStatus string

const (
	EntryFree   EntryStatus = "free"
	EntryBooked EntryStatus = "booked"
)

// ScheduleEntry is one bookable time range. Entries are addressed by
// (day date, entry id), never by their position in the schedule.
type ScheduleEntry struct {
	ID     string      `bson:"id" json:"id"`
	From   time.Time   `bson:"from" json:"from"`
	To     time.Time   `bson:"to" json:"to"`
	Status EntryStatus `bson:"status" json:"status"`
}

// SlotDay is one provider's calendar for one date. (ProviderID, Date) is unique.
type SlotDay struct {
	ProviderID string          `bson:"providerId" json:"providerId"`
	Date       string          `bson:"date" json:"date"` // e.g. "2024-06-01"
	Schedule   []ScheduleEntry `bson:"schedule" json:"schedule"`
	CreatedAt  time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// BookableSlot is one entry of the bookable view, flattened with its date.
type BookableSlot struct {
	Date  string        `json:"date"`
	Entry ScheduleEntry `json:"entry"`
}

// TimeRange is a requested entry when a provider publishes availability.
type TimeRange struct {
	From time.Time `json:"from" binding:"required"`
	To   time.Time `json:"to" binding:"required"`
}

// PublishSlotsRequest defines the payload for publishing a day's entries.
type PublishSlotsRequest struct {
	Date    string      `json:"date" binding:"required"`
	Entries []TimeRange `json:"entries" binding:"required,min=1,dive"`
}

// ProviderSlotDetails bundles a provider's public profile with its open slots.
type ProviderSlotDetails struct {
	Provider PublicProvider `json:"provider"`
	Slots    []BookableSlot `json:"slots"`
}
