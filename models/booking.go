package models

import "time"

// Booking links a user to the schedule entry they booked. It is written only
// after the entry has transitioned to booked.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	Date       string    `bson:"date" json:"date"`
	EntryID    string    `bson:"entryId" json:"entryId"`
	From       time.Time `bson:"from" json:"from"`
	To         time.Time `bson:"to" json:"to"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingPage is one page of a user's bookings.
type BookingPage struct {
	Bookings []Booking `json:"bookings"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}
