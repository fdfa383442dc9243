package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

// S3PutAPI is the subset of the S3 client used for uploads.
type S3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Storage uploads objects to an S3-compatible bucket. The logical bucket
// of an [Object] becomes a key prefix inside the configured bucket.
type s3Storage struct {
	client        S3PutAPI
	bucket        string
	publicBaseURL string
	logger        *logger.Logger
}

// NewS3Storage builds an S3 client from cfg. Static credentials are used when
// both keys are set, otherwise the default AWS credential chain applies.
func NewS3Storage(ctx context.Context, cfg config.S3, log *logger.Logger) (ObjectStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3Storage").Msg("failed to load aws config")
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Storage(client, cfg, log), nil
}

func newS3Storage(client S3PutAPI, cfg config.S3, log *logger.Logger) *s3Storage {
	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.Bucket)
	}

	return &s3Storage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        log,
	}
}

func (s *s3Storage) Put(ctx context.Context, object Object) (models.UploadedFile, error) {
	key := objectPath(object)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        object.Body,
		ContentType: aws.String(object.ContentType),
	}
	if object.Size > 0 {
		input.ContentLength = aws.Int64(object.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3Storage.Put").Str("key", key).Msg("failed to upload object")
		return models.UploadedFile{}, fmt.Errorf("upload %s: %w", key, err)
	}

	return models.UploadedFile{Key: object.Key, URL: s.publicBaseURL + "/" + key}, nil
}

// objectPath joins the logical bucket and key into a storage path.
func objectPath(object Object) string {
	key := strings.TrimLeft(object.Key, "/")
	if object.Bucket == "" {
		return key
	}
	return strings.Trim(object.Bucket, "/") + "/" + key
}
