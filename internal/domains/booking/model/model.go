package model

import (
	"time"

	"meetslot/infras/meeting"
	notificationModel "meetslot/internal/domains/notification/model"
)

const (
	EntityName = "booking"

	EventTypeConfirmed = "booking.confirmed"
	ReceiptKeyFormat   = "bookings/%s/%s.json"

	MessageScheduled     = "Discovery call scheduled successfully"
	MeetingSubjectFormat = "Discovery call: %s"
)

// Event is the payload published once a booking is confirmed.
type Event struct {
	Type           string    `json:"type"`
	BookingID      string    `json:"bookingId"`
	MeetingID      string    `json:"meetingId"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	RequesterEmail string    `json:"requesterEmail"`
	GuestCount     int       `json:"guestCount"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Receipt is the archived record of a booking and how its notifications went.
type Receipt struct {
	BookingID     string                      `json:"bookingId"`
	Date          string                      `json:"date"`
	Time          string                      `json:"time"`
	Timezone      string                      `json:"timezone"`
	Organizer     string                      `json:"organizer"`
	Requester     notificationModel.Requester `json:"requester"`
	Guests        []string                    `json:"guests"`
	Meeting       meeting.Meeting             `json:"meeting"`
	Notifications []notificationModel.Result  `json:"notifications"`
	CreatedAt     time.Time                   `json:"createdAt"`
}
