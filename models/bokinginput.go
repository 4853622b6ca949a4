package models

// BookingInput is the body of the booking endpoint.
type BookingInput struct {
	ProviderID string `json:"providerId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	EntryID    string `json:"entryId" binding:"required"`
}
