package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"meetslot/infras/meeting"
)

const (
	StrategyTeamsEvent    = "teams-event"
	StrategyOnlineMeeting = "online-meeting"
	StrategyCalendarEvent = "calendar-event"

	dateTimeLayout        = "2006-01-02T15:04:05"
	timeZoneUTC           = "UTC"
	onlineProviderTeams   = "teamsForBusiness"
	attendeeTypeRequired  = "required"
	participantRoleMember = "attendee"
	bodyContentTypeHTML   = "HTML"
)

var errMissingID = errors.New("graph response has no id")

type strategy struct {
	name   string
	path   func(organizer string) string
	body   func(req meeting.Request) any
	decode func(body []byte) (meeting.Meeting, error)
}

func defaultStrategies() []strategy {
	return []strategy{
		{
			name:   StrategyTeamsEvent,
			path:   func(organizer string) string { return "/users/" + organizer + "/events" },
			body:   func(req meeting.Request) any { return newEventPayload(req, true) },
			decode: decodeEvent,
		},
		{
			name:   StrategyOnlineMeeting,
			path:   func(organizer string) string { return "/users/" + organizer + "/onlineMeetings" },
			body:   newOnlineMeetingPayload,
			decode: decodeOnlineMeeting,
		},
		{
			name:   StrategyCalendarEvent,
			path:   func(organizer string) string { return "/users/" + organizer + "/calendar/events" },
			body:   func(req meeting.Request) any { return newEventPayload(req, false) },
			decode: decodeEvent,
		},
	}
}

type dateTimeTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type emailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type eventAttendee struct {
	EmailAddress emailAddress `json:"emailAddress"`
	Type         string       `json:"type"`
}

type itemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type eventPayload struct {
	Subject               string           `json:"subject"`
	Body                  itemBody         `json:"body"`
	Start                 dateTimeTimeZone `json:"start"`
	End                   dateTimeTimeZone `json:"end"`
	Attendees             []eventAttendee  `json:"attendees"`
	IsOnlineMeeting       bool             `json:"isOnlineMeeting,omitempty"`
	OnlineMeetingProvider string           `json:"onlineMeetingProvider,omitempty"`
}

type eventResponse struct {
	ID            string `json:"id"`
	WebLink       string `json:"webLink"`
	OnlineMeeting *struct {
		JoinURL string `json:"joinUrl"`
	} `json:"onlineMeeting"`
}

type meetingParticipant struct {
	UPN  string `json:"upn"`
	Role string `json:"role"`
}

type onlineMeetingPayload struct {
	Subject       string    `json:"subject"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	Participants  struct {
		Attendees []meetingParticipant `json:"attendees"`
	} `json:"participants"`
}

type onlineMeetingResponse struct {
	ID         string `json:"id"`
	JoinWebURL string `json:"joinWebUrl"`
}

func graphTime(t time.Time) dateTimeTimeZone {
	return dateTimeTimeZone{DateTime: t.UTC().Format(dateTimeLayout), TimeZone: timeZoneUTC}
}

func newEventPayload(req meeting.Request, online bool) eventPayload {
	payload := eventPayload{
		Subject:   req.Subject,
		Body:      itemBody{ContentType: bodyContentTypeHTML, Content: req.Body},
		Start:     graphTime(req.Start),
		End:       graphTime(req.End),
		Attendees: make([]eventAttendee, 0, len(req.Attendees)),
	}

	for _, a := range req.Attendees {
		payload.Attendees = append(payload.Attendees, eventAttendee{
			EmailAddress: emailAddress{Address: a.Email, Name: a.Name},
			Type:         attendeeTypeRequired,
		})
	}

	if online {
		payload.IsOnlineMeeting = true
		payload.OnlineMeetingProvider = onlineProviderTeams
	}

	return payload
}

func newOnlineMeetingPayload(req meeting.Request) any {
	payload := onlineMeetingPayload{
		Subject:       req.Subject,
		StartDateTime: req.Start.UTC(),
		EndDateTime:   req.End.UTC(),
	}

	payload.Participants.Attendees = make([]meetingParticipant, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		payload.Participants.Attendees = append(payload.Participants.Attendees, meetingParticipant{
			UPN:  a.Email,
			Role: participantRoleMember,
		})
	}

	return payload
}

func decodeEvent(body []byte) (meeting.Meeting, error) {
	var res eventResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return meeting.Meeting{}, fmt.Errorf("failed to decode event: %w", err)
	}

	if res.ID == "" {
		return meeting.Meeting{}, errMissingID
	}

	m := meeting.Meeting{ID: res.ID, WebLink: res.WebLink}
	if res.OnlineMeeting != nil {
		m.JoinURL = res.OnlineMeeting.JoinURL
	}

	return m, nil
}

func decodeOnlineMeeting(body []byte) (meeting.Meeting, error) {
	var res onlineMeetingResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return meeting.Meeting{}, fmt.Errorf("failed to decode online meeting: %w", err)
	}

	if res.ID == "" {
		return meeting.Meeting{}, errMissingID
	}

	return meeting.Meeting{ID: res.ID, JoinURL: res.JoinWebURL, WebLink: res.JoinWebURL}, nil
}
