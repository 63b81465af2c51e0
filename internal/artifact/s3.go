package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vijay-prabhu/careerfit/internal/config"
	"github.com/vijay-prabhu/careerfit/internal/secrets"
)

// ObjectGetter is the subset of the S3 client used to fetch artifacts.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads artifacts from a bucket, under an optional key prefix.
type S3Source struct {
	Client ObjectGetter
	Bucket string
	Prefix string

	// Attempts bounds retries of transient failures. Zero means 3.
	Attempts int
	// Backoff is the base delay between attempts. Zero means 500ms.
	Backoff time.Duration
}

// NewS3Source builds an S3Source for an s3://bucket/prefix location.
// Static credentials are used when an access key and secret key are
// configured through files or the AWS_ACCESS_KEY_ID and
// AWS_SECRET_ACCESS_KEY variables; otherwise the default AWS chain applies.
func NewS3Source(ctx context.Context, location string, cfg config.S3Config) (*S3Source, error) {
	bucket, prefix := config.SplitS3Location(location)
	if bucket == "" {
		return nil, fmt.Errorf("no bucket in location %q", location)
	}

	accessKey, err := secrets.Optional(secrets.Source{
		Name:  "s3 access key",
		Value: os.Getenv("AWS_ACCESS_KEY_ID"),
		File:  cfg.AccessKeyFile,
	})
	if err != nil {
		return nil, err
	}
	secretKey, err := secrets.Optional(secrets.Source{
		Name:  "s3 secret key",
		Value: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		File:  cfg.SecretKeyFile,
	})
	if err != nil {
		return nil, err
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Source{Client: client, Bucket: bucket, Prefix: prefix}, nil
}

// Open fetches the object for name. Missing keys fail immediately; other
// errors are retried with linear backoff.
func (s *S3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	attempts := s.Attempts
	if attempts <= 0 {
		attempts = 3
	}
	backoff := s.Backoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}

	key := s.key(name)
	var lastErr error
	for i := 0; i < attempts; i++ {
		out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.Bucket),
			Key:    aws.String(key),
		})
		if err == nil {
			return out.Body, nil
		}
		lastErr = err

		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("failed to get object: %w", err)
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(i+1) * backoff):
		}
	}
	return nil, fmt.Errorf("failed to get object after %d attempts: %w", attempts, lastErr)
}

// Location returns the s3:// URL of name.
func (s *S3Source) Location(name string) string {
	return "s3://" + s.Bucket + "/" + s.key(name)
}

func (s *S3Source) key(name string) string {
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}
