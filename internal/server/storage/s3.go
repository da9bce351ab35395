package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/dmitrijs2005/guestbook/internal/server/config"
)

// S3Storage stores photos in an S3-compatible bucket. Entries record the
// object key as their photo path; the bucket is expected to be served
// publicly under the same prefix the disk backend uses.
type S3Storage struct {
	bucket string
	client *s3.Client
}

// NewS3Storage builds an S3 client from the server config. MinIO-style
// deployments need the custom endpoint and path-style addressing.
func NewS3Storage(ctx context.Context, cfg *sc.Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("loading s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &S3Storage{bucket: cfg.S3Bucket, client: client}, nil
}

func (s *S3Storage) Save(ctx context.Context, fileName string, r io.Reader) (string, error) {
	key := path.Join("uploads", fileName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("putting object %s: %w", key, err)
	}

	return "/" + key, nil
}
