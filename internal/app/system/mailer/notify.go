// internal/app/system/mailer/notify.go
package mailer

import (
	"fmt"
	"html"

	"github.com/dalemusser/folioserve/internal/domain/models"
)

// NotifyContactMessage sends the admin a notification about a new inbox
// message. Callers treat failures as best-effort: the submitter already got
// their success response.
func (m *Mailer) NotifyContactMessage(to string, msg models.ContactMessage) error {
	subject := fmt.Sprintf("New contact message from %s", msg.Name)

	text := fmt.Sprintf(
		"You have a new message from your portfolio contact form.\n\n"+
			"Name: %s\nEmail: %s\nMobile: %s\n\n%s\n",
		msg.Name, msg.Email, msg.Mobile, msg.Message,
	)

	htmlBody := fmt.Sprintf(
		"<p>You have a new message from your portfolio contact form.</p>"+
			"<p><strong>Name:</strong> %s<br>"+
			"<strong>Email:</strong> %s<br>"+
			"<strong>Mobile:</strong> %s</p>"+
			"<blockquote>%s</blockquote>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Mobile),
		html.EscapeString(msg.Message),
	)

	return m.Send(Email{
		To:       to,
		Subject:  subject,
		TextBody: text,
		HTMLBody: htmlBody,
	})
}
