package source

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vsel/internal/config"
	"github.com/vango-dev/vsel/internal/errors"
)

// ObjectGetter is the subset of *s3.Client used to fetch documents.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var _ ObjectGetter = (*s3.Client)(nil)

// NewS3Client builds an S3 client from the s3 section of vsel.json.
// Credentials and any unset region come from the SDK's default chain
// (environment, shared config and credentials files, SSO, IMDS).
func NewS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.New("E104").
			WithDetail("Cannot load AWS configuration").
			Wrap(err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func (l *Loader) readS3(ctx context.Context, r Ref) ([]byte, error) {
	if l.s3 == nil {
		return nil, errors.New("E104").
			WithDetail("No S3 client is configured for " + r.String())
	}

	out, err := l.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.Bucket),
		Key:    aws.String(r.Key),
	})
	if err != nil {
		return nil, errors.New("E104").
			WithDetail("GetObject failed for " + r.String()).
			Wrap(err)
	}
	defer out.Body.Close()

	if l.maxBytes > 0 && out.ContentLength != nil && *out.ContentLength > l.maxBytes {
		return nil, errors.New("E105").
			WithDetail(r.String() + " is larger than the configured limit")
	}
	return l.readAll(out.Body, r)
}
