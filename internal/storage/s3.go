package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Backend persists processed files outside the local filesystem.
type Backend interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type S3Backend struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Backend(bucket, region, accessKey, secretKey, baseURL string) *S3Backend {
	client := s3.New(s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	})

	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &S3Backend{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

func (b *S3Backend) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", b.baseURL, key), nil
}

// Delete succeeds whether or not the object existed; S3 deletes are
// idempotent and do not report absence.
func (b *S3Backend) Delete(ctx context.Context, key string) (bool, error) {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
