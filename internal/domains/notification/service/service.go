package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"meetslot/config"
	"meetslot/infras/mailer"
	"meetslot/infras/otel"
	"meetslot/internal/domains/notification/model"
	"meetslot/internal/domains/notification/templates"
	"meetslot/shared/constant"
	"meetslot/shared/failure"
)

const (
	defaultTimeout = 10 * time.Second
	maxInFlight    = 8
)

type Notifier interface {
	NotifyBooking(ctx context.Context, booking model.Booking) []model.Result
}

type serviceImpl struct {
	mailer mailer.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(mailer mailer.Mailer, cfg *config.Config, otel otel.Otel) Notifier {
	return &serviceImpl{
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

// NotifyBooking emails every participant concurrently. Each delivery has its
// own deadline and a failure never stops the others.
func (s *serviceImpl) NotifyBooking(ctx context.Context, booking model.Booking) []model.Result {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NotifyBooking")
	defer scope.End()

	recipients := s.recipients(booking)
	results := make([]model.Result, len(recipients))

	var g errgroup.Group
	g.SetLimit(maxInFlight)

	for i, recipient := range recipients {
		g.Go(func() error {
			results[i] = s.deliver(ctx, booking, recipient)

			return nil
		})
	}

	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	scope.SetAttributes(map[string]any{"notification.total": len(results), "notification.failed": failed})

	if failed > 0 {
		log.Warn().Str("bookingId", booking.BookingID).Int("failed", failed).Msg("some booking notifications failed")
	}

	return results
}

func (s *serviceImpl) deliver(ctx context.Context, booking model.Booking, recipient model.Recipient) model.Result {
	result := model.Result{Recipient: recipient.Email, Role: recipient.Role, Status: model.StatusSent}

	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	rendered, err := templates.Render(booking, recipient)
	if err == nil {
		email := mailer.Email{
			To:      []string{recipient.Email},
			Subject: rendered.Subject,
			HTML:    rendered.HTML,
			Text:    rendered.Text,
		}

		if recipient.Role != model.RoleRequester {
			email.ReplyTo = []string{booking.Requester.Email}
		}

		result.MessageID, err = s.mailer.Send(ctx, email)
	}

	if err != nil {
		log.Error().Err(err).Str("recipient", recipient.Email).Str("role", recipient.Role).Msg("failed to send booking notification")

		result.Status = model.StatusFailed
		result.Reason = failure.ReasonNotificationFailed
		result.Error = err.Error()
	}

	return result
}

// recipients lists the requester, each distinct guest, the organizer and the
// admin when enabled. Guests repeating the requester are dropped.
func (s *serviceImpl) recipients(booking model.Booking) []model.Recipient {
	list := []model.Recipient{{
		Email: booking.Requester.Email,
		Name:  booking.Requester.Name,
		Role:  model.RoleRequester,
	}}

	seen := map[string]struct{}{strings.ToLower(booking.Requester.Email): {}}

	for _, guest := range booking.Guests {
		key := strings.ToLower(strings.TrimSpace(guest))
		if key == "" {
			continue
		}

		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		list = append(list, model.Recipient{Email: strings.TrimSpace(guest), Role: model.RoleGuest})
	}

	if booking.Organizer != "" {
		list = append(list, model.Recipient{Email: booking.Organizer, Role: model.RoleOrganizer})
	}

	if s.cfg.Schedule.NotifyAdmin && s.cfg.Schedule.AdminEmail != "" {
		list = append(list, model.Recipient{Email: s.cfg.Schedule.AdminEmail, Role: model.RoleAdmin})
	}

	return list
}

func (s *serviceImpl) timeout() time.Duration {
	if s.cfg.Schedule.NotificationTimeoutSeconds <= 0 {
		return defaultTimeout
	}

	return time.Duration(s.cfg.Schedule.NotificationTimeoutSeconds) * time.Second
}
