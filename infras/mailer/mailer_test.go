package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "meetslot/infras/otel/mocks"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}

	return &sesv2.SendEmailOutput{MessageId: aws.String("ses-123")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	fake := &fakeSES{}
	m := newSESMailer(fake, "no-reply@example.com", "tracking", otelMocks.NewOtel())

	id, err := m.Send(context.Background(), Email{
		To:      []string{"jane@example.com"},
		Subject: "Booked",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	})

	require.NoError(t, err)
	assert.Equal(t, "ses-123", id)
	assert.Equal(t, "no-reply@example.com", aws.ToString(fake.input.FromEmailAddress))
	assert.Equal(t, []string{"jane@example.com"}, fake.input.Destination.ToAddresses)
	assert.Equal(t, "tracking", aws.ToString(fake.input.ConfigurationSetName))
	assert.Equal(t, "Booked", aws.ToString(fake.input.Content.Simple.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(fake.input.Content.Simple.Body.Html.Data))
	assert.Equal(t, "hi", aws.ToString(fake.input.Content.Simple.Body.Text.Data))
}

func TestSESMailer_SendError(t *testing.T) {
	fake := &fakeSES{err: errors.New("throttled")}
	m := newSESMailer(fake, "no-reply@example.com", "", otelMocks.NewOtel())

	_, err := m.Send(context.Background(), Email{To: []string{"jane@example.com"}, Subject: "Booked", Text: "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
	assert.Nil(t, fake.input.ConfigurationSetName)
	assert.Nil(t, fake.input.Content.Simple.Body.Html)
}

func TestMailer_RequiresRecipient(t *testing.T) {
	_, err := NewLog().Send(context.Background(), Email{Subject: "x"})
	assert.ErrorIs(t, err, ErrNoRecipient)

	_, err = newSESMailer(&fakeSES{}, "a@example.com", "", otelMocks.NewOtel()).Send(context.Background(), Email{})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestLogMailer_Send(t *testing.T) {
	id, err := NewLog().Send(context.Background(), Email{To: []string{"jane@example.com"}, Subject: "Booked", Text: "hi"})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
