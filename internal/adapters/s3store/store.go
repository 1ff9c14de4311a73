package s3store

// Package s3store uploads listing images to S3-compatible object storage
// (MinIO in development).

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/makaan/makaan-api/config"
	"github.com/makaan/makaan-api/internal/ports"
)

// objectAPI is the subset of the S3 client the store uses. Tests inject a
// fake; production wires *s3.Client.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Store implements ports.ImageStore on an S3 bucket.
type Store struct {
	client        objectAPI
	bucket        string
	endpoint      string
	publicBaseURL string
	newKey        func(filename string) string
}

var _ ports.ImageStore = (*Store)(nil)

// New creates a Store from storage configuration, building an S3 client with
// static credentials and, when Endpoint is set, path-style addressing against
// that endpoint.
func New(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newStore(client, cfg), nil
}

func newStore(client objectAPI, cfg config.StorageConfig) *Store {
	return &Store{
		client:        client,
		bucket:        cfg.Bucket,
		endpoint:      strings.TrimRight(cfg.Endpoint, "/"),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		newKey:        randomKey,
	}
}

// randomKey derives a collision-free object key, keeping the original file
// extension so content sniffing stays trivial downstream.
func randomKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "properties/" + uuid.NewString() + ext
}

// Put stores one object and returns its public URL and key.
func (s *Store) Put(ctx context.Context, filename, contentType string, body []byte) (ports.StoredObject, error) {
	key := s.newKey(filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return ports.StoredObject{}, fmt.Errorf("put object %q: %w", key, err)
	}

	return ports.StoredObject{URL: s.publicURL(key), Key: key}, nil
}

// Delete removes a stored object. S3 DeleteObject is idempotent, so missing
// keys succeed.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	return nil
}

// publicURL builds the client-facing URL for a stored key.
func (s *Store) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return s.endpoint + "/" + s.bucket + "/" + key
}
