package models

// Task payloads consumed by the background worker.

// OTPMailPayload carries a one-time code to be mailed.
type OTPMailPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ReminderPayload identifies a booking whose owner should be reminded.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	From      string `json:"from"`
	To        string `json:"to"`
}
