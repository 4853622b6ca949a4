package notification

import (
	"fmt"
	"html"

	"bookwise/models"
)

func otpMessage(name, code string) (string, string) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your verification code is <b>%s</b>. It expires in a few minutes.</p>"+
			"<p>If you did not request this, ignore this email.</p>",
		html.EscapeString(name), html.EscapeString(code),
	)
	return "Your verification code", body
}

func reminderMessage(name string, p models.ReminderPayload) (string, string) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>This is a reminder of your appointment on %s from %s to %s.</p>",
		html.EscapeString(name), p.Date, p.From, p.To,
	)
	return "Upcoming appointment", body
}
