package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var _ Backend = (*S3Backend)(nil)

// S3Options configures an S3 compatible endpoint (MinIO, AWS, R2).
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
	Bucket    string
	Prefix    string
}

// S3Backend keeps objects under Prefix in one bucket. PutObject replaces an
// object in a single step, so Write is atomic without staging.
type S3Backend struct {
	client *minio.Client
	bucket string
	prefix string
}

func NewS3Backend(opts S3Options) (*S3Backend, error) {
	if opts.Endpoint == "" || opts.Bucket == "" {
		return nil, errors.New("storage: s3 endpoint and bucket are required")
	}
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: s3 client: %w", err)
	}
	return &S3Backend{client: client, bucket: opts.Bucket, prefix: strings.Trim(opts.Prefix, "/")}, nil
}

func (b *S3Backend) Exists(ctx context.Context, target string) (bool, error) {
	key, err := b.key(target)
	if err != nil {
		return false, err
	}
	_, err = b.client.StatObject(ctx, b.bucket, key, minio.StatObjectOptions{})
	if isNoSuchKey(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: s3 stat %q: %w", key, err)
	}
	return true, nil
}

func (b *S3Backend) Open(ctx context.Context, target string) (io.ReadCloser, int64, error) {
	key, err := b.key(target)
	if err != nil {
		return nil, 0, err
	}
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("storage: s3 get %q: %w", key, err)
	}
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if isNoSuchKey(err) {
			return nil, 0, fmt.Errorf("%w: %q", ErrNotFound, target)
		}
		return nil, 0, fmt.Errorf("storage: s3 stat %q: %w", key, err)
	}
	return obj, info.Size, nil
}

func (b *S3Backend) Write(ctx context.Context, target string, data []byte) error {
	key, err := b.key(target)
	if err != nil {
		return err
	}
	_, err = b.client.PutObject(ctx, b.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mimetype.Detect(data).String(),
	})
	if err != nil {
		return fmt.Errorf("storage: s3 put %q: %w", key, err)
	}
	return nil
}

func (b *S3Backend) Delete(ctx context.Context, target string) error {
	key, err := b.key(target)
	if err != nil {
		return err
	}
	if err := b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{}); err != nil && !isNoSuchKey(err) {
		return fmt.Errorf("storage: s3 remove %q: %w", key, err)
	}
	return nil
}

func (b *S3Backend) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	key, err := b.key(prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for obj := range b.client.ListObjects(ctx, b.bucket, minio.ListObjectsOptions{Prefix: key + "/", Recursive: true}) {
		if obj.Err != nil {
			return removed, fmt.Errorf("storage: s3 list %q: %w", key, obj.Err)
		}
		if err := b.client.RemoveObject(ctx, b.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("storage: s3 remove %q: %w", obj.Key, err)
		}
		removed++
	}
	return removed, nil
}

func (b *S3Backend) key(target string) (string, error) {
	clean := path.Clean("/" + target)[1:]
	if clean == "" || clean != target {
		return "", fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	if b.prefix == "" {
		return clean, nil
	}
	return b.prefix + "/" + clean, nil
}

func isNoSuchKey(err error) bool {
	if err == nil {
		return false
	}
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
