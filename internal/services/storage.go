package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"hirepilot/internal/apperr"
	"hirepilot/internal/config"
)

// StorageService uploads and downloads opaque blobs in an S3-compatible
// bucket. The returned key is the caller's only handle to the blob.
type StorageService interface {
	Upload(ctx context.Context, file *UploadedFile) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
}

type storageService struct {
	client *s3.Client
	bucket string
	now    func() time.Time
}

func NewStorageService(cfg config.StorageConfig) (StorageService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &storageService{
		client: client,
		bucket: cfg.Bucket,
		now:    time.Now,
	}, nil
}

// Upload implements StorageService. The key keeps the upload-time millis plus
// the original filename; two uploads of the same name in the same millisecond
// would collide.
func (s *storageService) Upload(ctx context.Context, file *UploadedFile) (string, error) {
	key := storageKey(s.now(), file.Name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(file.MimeType),
	})
	if err != nil {
		return "", apperr.Wrap(apperr.CodeStorageFailure, "failed to store file", err)
	}

	return key, nil
}

// Download implements StorageService.
func (s *storageService) Download(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, apperr.Wrap(apperr.CodeFileNotFound, "no stored file for key", err)
		}
		return nil, apperr.Wrap(apperr.CodeStorageFailure, "failed to fetch file", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorageFailure, "failed to read file body", err)
	}

	return data, nil
}

// storageKey derives the blob key from the upload instant and the original
// filename. Two uploads of the same name within one millisecond collide;
// the key format is kept as the continuity token clients already hold.
func storageKey(t time.Time, name string) string {
	return fmt.Sprintf("%d-%s", t.UnixMilli(), sanitizeKeyName(name))
}

func sanitizeKeyName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return '_'
		}
		return r
	}, name)
}
