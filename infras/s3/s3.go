package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"meetslot/config"
	"meetslot/infras/otel"
	"meetslot/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	regionAuto        = "auto"
)

type S3 interface {
	UploadJSON(ctx context.Context, objectKey string, value any) (url string, err error)
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Impl struct {
	client       putObjectAPI
	bucket       string
	publicDomain string
	otel         otel.Otel
}

func (svc *s3Impl) UploadJSON(ctx context.Context, objectKey string, value any) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadJSON")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	data, err := json.Marshal(value)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to encode object: %w", err)
	}

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(constant.ContentTypeJSON),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload object to S3")

		return constant.Empty, fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return svc.objectURL(objectKey), nil
}

func (svc *s3Impl) objectURL(objectKey string) string {
	if svc.publicDomain == "" {
		return path.Join(svc.bucket, objectKey)
	}

	return fmt.Sprintf("%s/%s", strings.TrimRight(svc.publicDomain, "/"), objectKey)
}

type disabledS3 struct{}

func (disabledS3) UploadJSON(_ context.Context, objectKey string, _ any) (string, error) {
	log.Debug().Str("key", objectKey).Msg("S3 disabled, skipping upload")

	return constant.Empty, nil
}

func New(config *config.Config, otel otel.Otel) S3 {
	s3Cfg := config.External.S3
	if !s3Cfg.Enable {
		log.Warn().Msg("S3 disabled, booking receipts will not be archived")

		return disabledS3{}
	}

	staticProvider := credentials.NewStaticCredentialsProvider(
		s3Cfg.AccessKeyID,
		s3Cfg.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s3Cfg.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.APIEndpoint)
		}
		o.UsePathStyle = true
		o.Region = regionAuto
	})

	return newS3(s3Client, s3Cfg.BucketName, s3Cfg.PublicDomain, otel)
}

func newS3(client putObjectAPI, bucket, publicDomain string, otel otel.Otel) *s3Impl {
	return &s3Impl{
		client:       client,
		bucket:       bucket,
		publicDomain: publicDomain,
		otel:         otel,
	}
}
