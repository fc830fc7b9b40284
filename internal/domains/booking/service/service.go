package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"meetslot/config"
	"meetslot/infras/kafka"
	"meetslot/infras/meeting"
	"meetslot/infras/otel"
	"meetslot/infras/s3"
	"meetslot/internal/domains/booking/model"
	"meetslot/internal/domains/booking/model/dto"
	notificationModel "meetslot/internal/domains/notification/model"
	notificationService "meetslot/internal/domains/notification/service"
	scheduleModel "meetslot/internal/domains/schedule/model"
	"meetslot/internal/domains/schedule/rules"
	scheduleService "meetslot/internal/domains/schedule/service"
	"meetslot/shared/background"
	"meetslot/shared/constant"
	"meetslot/shared/failure"
	"meetslot/shared/timezone"
)

const defaultMeetingTimeout = 20 * time.Second

type Booking interface {
	Schedule(ctx context.Context, req dto.ScheduleRequest) (dto.ScheduleResponse, error)
}

type serviceImpl struct {
	schedule scheduleService.Schedule
	provider meeting.Provider
	notifier notificationService.Notifier
	kafka    kafka.Client
	s3       s3.S3
	jobs     *background.Runner
	clock    timezone.Clock
	loc      *time.Location
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	schedule scheduleService.Schedule,
	provider meeting.Provider,
	notifier notificationService.Notifier,
	kafka kafka.Client,
	s3 s3.S3,
	jobs *background.Runner,
	clock timezone.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		schedule: schedule,
		provider: provider,
		notifier: notifier,
		kafka:    kafka,
		s3:       s3,
		jobs:     jobs,
		clock:    clock,
		loc:      timezone.Business(),
		cfg:      cfg,
		otel:     otel,
	}
}

// Schedule validates the slot, creates the provider meeting, reserves the slot
// and notifies participants. No external call happens before the slot passes
// every rule, and the slot is never reserved without a meeting.
func (s *serviceImpl) Schedule(ctx context.Context, req dto.ScheduleRequest) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	time24, err := rules.NormalizeTo24Hour(req.SelectedTime)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	check, err := s.schedule.CheckAvailability(ctx, req.SelectedDate, time24)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !check.Available {
		scope.AddEvent("slot.rejected")

		return res, failure.Rejected(check.Reason, check.Message) //nolint:wrapcheck
	}

	start, err := rules.Compose(check.Date, check.Time, s.loc)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	end := start.Add(constant.MeetingDuration)
	organizer := s.organizer(req)
	bookingID := uuid.NewString()
	subject := fmt.Sprintf(model.MeetingSubjectFormat, req.UserDetails.Name)

	scope.SetAttributes(map[string]any{"booking.id": bookingID, "slot.date": check.Date, "slot.time": check.Time})

	created, err := s.createMeeting(ctx, meeting.Request{
		Subject:   subject,
		Body:      meetingBody(req),
		Organizer: organizer,
		Start:     start,
		End:       end,
		Attendees: attendees(req),
	})
	if err != nil {
		log.Error().Err(err).Str("date", check.Date).Str("time", check.Time).Msg("failed to create meeting")

		return res, failure.MeetingCreationFailed(err) //nolint:wrapcheck
	}

	err = s.schedule.Reserve(ctx, scheduleModel.BookedSlot{Date: check.Date, Time: check.Time, MeetingID: created.ID})
	if err != nil {
		log.Warn().
			Err(err).
			Str("meetingId", created.ID).
			Str("provider", created.Provider).
			Str("date", check.Date).
			Str("time", check.Time).
			Msg("slot reservation failed after meeting creation, provider meeting is orphaned")

		return res, err //nolint:wrapcheck
	}

	booking := notificationModel.Booking{
		BookingID:     bookingID,
		Date:          check.Date,
		Time:          check.Time,
		DisplayTime:   check.DisplayTime,
		DayOfWeek:     check.DayOfWeek,
		TimezoneLabel: constant.DefaultTimezoneLabel,
		Start:         start,
		End:           end,
		MeetingID:     created.ID,
		JoinURL:       created.JoinURL,
		CompanyName:   s.cfg.Schedule.CompanyName,
		Organizer:     organizer,
		Requester:     req.Requester(),
		Guests:        req.GuestEmails,
	}

	notifications := s.notifier.NotifyBooking(ctx, booking)

	res = dto.ScheduleResponse{
		Success:       true,
		Message:       model.MessageScheduled,
		BookingID:     bookingID,
		Notifications: notifications,
	}
	res.Meeting.FromMeeting(created)
	res.Meeting.Subject = subject
	res.Meeting.Date = check.Date
	res.Meeting.Time = check.Time
	res.Meeting.DisplayTime = check.DisplayTime
	res.Meeting.Timezone = constant.DefaultTimezoneLabel
	res.Meeting.Start = start
	res.Meeting.End = end
	res.Meeting.Organizer = organizer

	log.Info().Str("bookingId", bookingID).Str("meetingId", created.ID).Str("date", check.Date).Str("time", check.Time).Msg("discovery call scheduled")

	s.publish(ctx, booking)
	s.archive(ctx, booking, created, notifications)

	return res, nil
}

func (s *serviceImpl) createMeeting(ctx context.Context, req meeting.Request) (meeting.Meeting, error) {
	timeout := defaultMeetingTimeout
	if s.cfg.Schedule.MeetingTimeoutSeconds > 0 {
		timeout = time.Duration(s.cfg.Schedule.MeetingTimeoutSeconds) * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return s.provider.Create(ctx, req) //nolint:wrapcheck
}

func (s *serviceImpl) organizer(req dto.ScheduleRequest) string {
	if req.OrganizerEmail != "" {
		return req.OrganizerEmail
	}

	return s.cfg.Schedule.OrganizerEmail
}

func (s *serviceImpl) publish(ctx context.Context, booking notificationModel.Booking) {
	event := model.Event{
		Type:           model.EventTypeConfirmed,
		BookingID:      booking.BookingID,
		MeetingID:      booking.MeetingID,
		Date:           booking.Date,
		Time:           booking.Time,
		Start:          booking.Start,
		End:            booking.End,
		RequesterEmail: booking.Requester.Email,
		GuestCount:     len(booking.Guests),
		OccurredAt:     s.clock(),
	}

	s.jobs.Go(ctx, "kafka.booking_confirmed", func(ctx context.Context) error {
		return s.kafka.SendMessages(ctx, s.cfg.Kafka.TopicBooking, kafka.Message{Key: booking.BookingID, Value: event}) //nolint:wrapcheck
	})
}

func (s *serviceImpl) archive(ctx context.Context, booking notificationModel.Booking, created meeting.Meeting, notifications []notificationModel.Result) {
	receipt := model.Receipt{
		BookingID:     booking.BookingID,
		Date:          booking.Date,
		Time:          booking.Time,
		Timezone:      booking.TimezoneLabel,
		Organizer:     booking.Organizer,
		Requester:     booking.Requester,
		Guests:        booking.Guests,
		Meeting:       created,
		Notifications: notifications,
		CreatedAt:     s.clock(),
	}

	key := fmt.Sprintf(model.ReceiptKeyFormat, booking.Date, booking.BookingID)

	s.jobs.Go(ctx, "s3.booking_receipt", func(ctx context.Context) error {
		_, err := s.s3.UploadJSON(ctx, key, receipt)

		return err //nolint:wrapcheck
	})
}

func attendees(req dto.ScheduleRequest) []meeting.Attendee {
	list := []meeting.Attendee{{Name: req.UserDetails.Name, Email: req.UserDetails.Email}}

	for _, guest := range req.GuestEmails {
		if strings.EqualFold(guest, req.UserDetails.Email) {
			continue
		}

		list = append(list, meeting.Attendee{Email: guest})
	}

	return list
}

func meetingBody(req dto.ScheduleRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<p>Discovery call with %s (%s)</p>", html.EscapeString(req.UserDetails.Name), html.EscapeString(req.UserDetails.Email))

	if req.UserDetails.Company != "" {
		fmt.Fprintf(&b, "<p>Company: %s</p>", html.EscapeString(req.UserDetails.Company))
	}

	if req.UserDetails.Message != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(req.UserDetails.Message))
	}

	return b.String()
}
