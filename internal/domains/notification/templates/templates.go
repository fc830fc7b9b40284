// Package templates renders the booking emails. Both bodies are parsed once
// from the embedded files.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmlTemplate "html/template"
	"strings"
	textTemplate "text/template"

	"meetslot/internal/domains/notification/model"
	"meetslot/shared/constant"
)

const (
	htmlName = "booking.html.tmpl"
	textName = "booking.txt.tmpl"
)

//go:embed *.tmpl
var files embed.FS

var (
	funcs = map[string]any{"join": strings.Join}

	htmlBody = htmlTemplate.Must(htmlTemplate.New(htmlName).Funcs(funcs).ParseFS(files, htmlName))
	textBody = textTemplate.Must(textTemplate.New(textName).Funcs(funcs).ParseFS(files, textName))
)

type data struct {
	Role            string
	RecipientName   string
	Internal        bool
	DurationMinutes int
	Booking         model.Booking
}

type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

func Render(booking model.Booking, recipient model.Recipient) (Rendered, error) {
	d := data{
		Role:            recipient.Role,
		RecipientName:   recipient.Name,
		Internal:        recipient.Role == model.RoleOrganizer || recipient.Role == model.RoleAdmin,
		DurationMinutes: int(constant.MeetingDuration.Minutes()),
		Booking:         booking,
	}

	if d.RecipientName == "" {
		d.RecipientName = "there"
	}

	var html, text bytes.Buffer

	if err := htmlBody.Execute(&html, d); err != nil {
		return Rendered{}, fmt.Errorf("failed to render html body: %w", err)
	}

	if err := textBody.Execute(&text, d); err != nil {
		return Rendered{}, fmt.Errorf("failed to render text body: %w", err)
	}

	return Rendered{
		Subject: Subject(booking, recipient.Role),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

func Subject(booking model.Booking, role string) string {
	when := fmt.Sprintf("%s %s %s", booking.Date, booking.DisplayTime, booking.TimezoneLabel)

	switch role {
	case model.RoleRequester:
		return fmt.Sprintf("Your discovery call with %s is confirmed for %s", booking.CompanyName, when)
	case model.RoleGuest:
		return fmt.Sprintf("Invitation: discovery call with %s on %s", booking.CompanyName, when)
	case model.RoleOrganizer:
		return fmt.Sprintf("New discovery call with %s on %s", booking.Requester.Name, when)
	default:
		return fmt.Sprintf("[Admin] Discovery call booked for %s", when)
	}
}
