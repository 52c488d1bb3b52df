package blob

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Pending is a selected-but-not-yet-uploaded binary held in form state.
type Pending struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Uploader accepts a single binary and returns a publicly retrievable URL.
type Uploader interface {
	Upload(ctx context.Context, file Pending) (string, error)
}

// Config holds the object-store connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicURL is the externally reachable base URL for uploaded objects.
	// Empty means objects are addressed directly on the endpoint.
	PublicURL string
}

// MinioUploader stores uploads in a MinIO bucket.
type MinioUploader struct {
	client *minioSDK.Client
	cfg    Config
}

// NewMinioUploader connects to the object store and ensures the bucket exists.
func NewMinioUploader(ctx context.Context, cfg Config) (*MinioUploader, error) {
	client, err := minioSDK.New(cfg.Endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioUploader{client: client, cfg: cfg}, nil
}

// Upload writes one binary under a random object key and returns its URL.
func (u *MinioUploader) Upload(ctx context.Context, file Pending) (string, error) {
	key := uuid.NewString() + path.Ext(file.Name)

	opts := minioSDK.PutObjectOptions{ContentType: file.ContentType}
	if _, err := u.client.PutObject(ctx, u.cfg.Bucket, key, file.Reader, file.Size, opts); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", file.Name, err)
	}

	base := u.cfg.PublicURL
	if base == "" {
		scheme := "http"
		if u.cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, u.cfg.Endpoint)
	}
	return fmt.Sprintf("%s/%s/%s", base, u.cfg.Bucket, key), nil
}
