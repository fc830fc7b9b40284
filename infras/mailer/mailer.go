// Package mailer delivers rendered emails through Amazon SES v2, or through
// the process log when SES is disabled.
package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"meetslot/config"
	"meetslot/infras/otel"
)

var ErrNoRecipient = errors.New("email has no recipient")

type Email struct {
	To      []string
	ReplyTo []string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, email Email) (messageID string, err error)
}

// New picks SES when it is enabled and the log mailer otherwise.
func New(cfg *config.Config, otel otel.Otel) Mailer {
	if cfg.External.SES.Enable {
		return NewSES(cfg, otel)
	}

	log.Warn().Msg("SES disabled, emails are written to the log")

	return NewLog()
}

type logMailer struct{}

func NewLog() Mailer {
	return logMailer{}
}

func (logMailer) Send(ctx context.Context, email Email) (string, error) {
	if len(email.To) == 0 {
		return "", ErrNoRecipient
	}

	if err := ctx.Err(); err != nil {
		return "", err //nolint:wrapcheck
	}

	id := uuid.NewString()

	log.Info().
		Str("messageId", id).
		Str("to", strings.Join(email.To, ",")).
		Str("subject", email.Subject).
		Msg("email logged")
	log.Debug().Str("messageId", id).Msg(email.Text)

	return id, nil
}
