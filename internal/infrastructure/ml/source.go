package ml

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ArtifactSource opens model artifacts by name.
type ArtifactSource interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type fileSource struct {
	dir string
}

// NewFileSource reads artifacts from a local directory.
func NewFileSource(dir string) ArtifactSource {
	return &fileSource{dir: dir}
}

func (s *fileSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("open model artifact %s: %w", name, err)
	}
	return f, nil
}

// S3GetObjectAPI is the subset of the S3 client used to fetch artifacts.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Source struct {
	client S3GetObjectAPI
	bucket string
	prefix string
}

// NewS3Source reads artifacts from bucket under prefix.
func NewS3Source(client S3GetObjectAPI, bucket, prefix string) ArtifactSource {
	return &s3Source{client: client, bucket: bucket, prefix: prefix}
}

func (s *s3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := path.Join(s.prefix, name)
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object s3://%s/%s: %w", s.bucket, key, err)
	}
	return resp.Body, nil
}

func readAll(ctx context.Context, src ArtifactSource, name string) ([]byte, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read model artifact %s: %w", name, err)
	}
	return data, nil
}
