// Package meeting defines the port used to create online meetings with an
// external provider, plus a local provider for development.
package meeting

//go:generate go run go.uber.org/mock/mockgen -source=./meeting.go -destination=./mocks/meeting_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const ProviderLocal = "local"

var ErrNoProvider = errors.New("no meeting provider succeeded")

type Attendee struct {
	Name  string
	Email string
}

// Request describes a meeting to create. Start and End are absolute instants.
type Request struct {
	Subject   string
	Body      string
	Organizer string
	Start     time.Time
	End       time.Time
	Attendees []Attendee
}

type Meeting struct {
	ID       string    `json:"id"`
	JoinURL  string    `json:"joinUrl,omitempty"`
	WebLink  string    `json:"webLink,omitempty"`
	Provider string    `json:"provider"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type Provider interface {
	Create(ctx context.Context, req Request) (Meeting, error)
}

type localProvider struct{}

// NewLocal returns a provider that mints a local id and never calls out.
func NewLocal() Provider {
	return localProvider{}
}

func (localProvider) Create(ctx context.Context, req Request) (Meeting, error) {
	if err := ctx.Err(); err != nil {
		return Meeting{}, err //nolint:wrapcheck
	}

	m := Meeting{
		ID:       uuid.NewString(),
		Provider: ProviderLocal,
		Start:    req.Start,
		End:      req.End,
	}

	log.Debug().Str("meetingId", m.ID).Str("organizer", req.Organizer).Msg("created local meeting")

	return m, nil
}
