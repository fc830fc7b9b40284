package dto

import (
	"time"

	"meetslot/infras/meeting"
	notificationModel "meetslot/internal/domains/notification/model"
)

type UserDetails struct {
	Name    string `json:"name"              validate:"required,max=200"`
	Email   string `json:"email"             validate:"required,email"`
	Phone   string `json:"phone,omitempty"   validate:"omitempty,max=32"`
	Company string `json:"company,omitempty" validate:"omitempty,max=200"`
	Message string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

type ScheduleRequest struct {
	SelectedDate   string      `json:"selectedDate"             validate:"required,civildate"`
	SelectedTime   string      `json:"selectedTime"             validate:"required"`
	UserDetails    UserDetails `json:"userDetails"`
	GuestEmails    []string    `json:"guestEmails,omitempty"    validate:"omitempty,max=10,dive,email"`
	OrganizerEmail string      `json:"organizerEmail,omitempty" validate:"omitempty,email"`
}

func (r ScheduleRequest) Requester() notificationModel.Requester {
	return notificationModel.Requester{
		Name:    r.UserDetails.Name,
		Email:   r.UserDetails.Email,
		Phone:   r.UserDetails.Phone,
		Company: r.UserDetails.Company,
		Message: r.UserDetails.Message,
	}
}

type MeetingResponse struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	JoinURL     string    `json:"joinUrl,omitempty"`
	WebLink     string    `json:"webLink,omitempty"`
	Provider    string    `json:"provider"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	DisplayTime string    `json:"displayTime"`
	Timezone    string    `json:"timezone"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Organizer   string    `json:"organizer"`
}

func (m *MeetingResponse) FromMeeting(created meeting.Meeting) {
	m.ID = created.ID
	m.JoinURL = created.JoinURL
	m.WebLink = created.WebLink
	m.Provider = created.Provider
	m.Start = created.Start
	m.End = created.End
}

type ScheduleResponse struct {
	Success       bool                       `json:"success"`
	Message       string                     `json:"message"`
	BookingID     string                     `json:"bookingId"`
	Meeting       MeetingResponse            `json:"meeting"`
	Notifications []notificationModel.Result `json:"notifications"`
}
