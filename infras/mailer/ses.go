package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"

	"meetslot/config"
	"meetslot/infras/otel"
	"meetslot/shared/constant"
)

const (
	charsetUTF8        = "UTF-8"
	otelAttrSubject    = "email.subject"
	otelAttrRecipients = "email.recipients"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesMailer struct {
	client sesAPI
	sender string
	cfgSet string
	otel   otel.Otel
}

func NewSES(cfg *config.Config, otel otel.Otel) Mailer {
	sesCfg := cfg.External.SES

	opts := []func(*awsConfig.LoadOptions) error{awsConfig.WithRegion(sesCfg.Region)}
	if sesCfg.AccessKeyID != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(sesCfg.AccessKeyID, sesCfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration for SES")
	}

	log.Info().Str("region", sesCfg.Region).Msg("SES mailer initialized")

	return newSESMailer(sesv2.NewFromConfig(awsCfg), sesCfg.SenderEmail, sesCfg.ConfigSetName, otel)
}

func newSESMailer(client sesAPI, sender, configSet string, otel otel.Otel) *sesMailer {
	return &sesMailer{client: client, sender: sender, cfgSet: configSet, otel: otel}
}

func (m *sesMailer) Send(ctx context.Context, email Email) (messageID string, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(email.To) == 0 {
		return "", ErrNoRecipient
	}

	scope.SetAttributes(map[string]any{
		otelAttrSubject:    email.Subject,
		otelAttrRecipients: len(email.To),
	})

	body := &types.Body{}
	if email.HTML != "" {
		body.Html = &types.Content{Data: aws.String(email.HTML), Charset: aws.String(charsetUTF8)}
	}

	if email.Text != "" {
		body.Text = &types.Content{Data: aws.String(email.Text), Charset: aws.String(charsetUTF8)}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.sender),
		Destination:      &types.Destination{ToAddresses: email.To},
		ReplyToAddresses: email.ReplyTo,
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charsetUTF8)},
				Body:    body,
			},
		},
	}

	if m.cfgSet != "" {
		input.ConfigurationSetName = aws.String(m.cfgSet)
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		log.Error().Err(err).Strs("to", email.To).Msg("failed to send email")

		return "", fmt.Errorf("failed to send email: %w", err)
	}

	messageID = aws.ToString(out.MessageId)

	log.Info().Str("messageId", messageID).Strs("to", email.To).Msg("email sent")

	return messageID, nil
}
