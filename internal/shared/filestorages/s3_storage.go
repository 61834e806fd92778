package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

const defaultS3Region = "us-east-1"

// S3Options configures an S3-compatible FileStorage (AWS, MinIO, Akave O3...).
type S3Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// s3API is the subset of the S3 client used by s3Storage.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Storage struct {
	client s3API
	bucket string
}

// NewS3Storage builds a FileStorage backed by an S3-compatible bucket.
// A custom endpoint switches the client to path-style addressing.
func NewS3Storage(opts S3Options) (FileStorage, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket cannot be empty", ErrInvalidRootDir)
	}
	region := opts.Region
	if region == "" {
		region = defaultS3Region
	}

	cfg := aws.Config{Region: region}
	if opts.AccessKey != "" {
		cfg.Credentials = aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""))
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Storage(client, opts.Bucket), nil
}

func newS3Storage(client s3API, bucket string) *s3Storage {
	return &s3Storage{client: client, bucket: bucket}
}

func (s *s3Storage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path.Clean(key)),
		Body:   r,
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}
	if !opts.AllowOverwrite {
		// Conditional write: fails with 412 PreconditionFailed when the key exists
		input.IfNoneMatch = aws.String("*")
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "PreconditionFailed" {
			return nil, ErrFileAlreadyExists
		}
		return nil, fmt.Errorf("put object %q: %w", key, err)
	}
	return &PutResult{FileKey: key}, nil
}

func (s *s3Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path.Clean(key)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	return out.Body, nil
}
