package model

import "time"

const (
	RoleRequester = "requester"
	RoleGuest     = "guest"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"

	StatusSent   = "sent"
	StatusFailed = "failed"
)

type Requester struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

// Booking is everything the emails need to describe a confirmed call.
type Booking struct {
	BookingID     string
	Date          string
	Time          string
	DisplayTime   string
	DayOfWeek     string
	TimezoneLabel string
	Start         time.Time
	End           time.Time
	MeetingID     string
	JoinURL       string
	CompanyName   string
	Organizer     string
	Requester     Requester
	Guests        []string
}

type Recipient struct {
	Email string
	Name  string
	Role  string
}

// Result reports one delivery attempt.
type Result struct {
	Recipient string `json:"recipient"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	MessageID string `json:"messageId,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (r Result) Failed() bool {
	return r.Status == StatusFailed
}
