package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base the storefront loads images from, e.g.
	// https://cdn.example.com. Defaults to the endpoint.
	PublicURL string
}

func MinioConfigFromEnv() MinioConfig {
	cfg := MinioConfig{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    os.Getenv("MINIO_BUCKET"),
		UseSSL:    strings.EqualFold(os.Getenv("MINIO_USE_SSL"), "true"),
		PublicURL: strings.TrimRight(os.Getenv("MINIO_PUBLIC_URL"), "/"),
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "car-images"
	}
	if cfg.PublicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		cfg.PublicURL = scheme + "://" + cfg.Endpoint
	}
	return cfg
}

// MinioService stores car images in a self-hosted S3 bucket.
type MinioService struct {
	client *minio.Client
	cfg    MinioConfig
}

// NewMinioService connects and makes sure the bucket exists.
func NewMinioService(ctx context.Context, cfg MinioConfig) (*MinioService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}
	return &MinioService{client: client, cfg: cfg}, nil
}

func (s *MinioService) Upload(ctx context.Context, r io.Reader, size int64, contentType, folder, name string) (StoredImage, error) {
	if name == "" {
		name = uuid.Must(uuid.NewV7()).String()
	}
	object := path.Join(folder, name+extensionFor(contentType))

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, object, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return StoredImage{}, fmt.Errorf("failed to upload image: %w", err)
	}

	return StoredImage{URL: s.objectURL(object), PublicID: object}, nil
}

func (s *MinioService) Delete(ctx context.Context, publicID string) error {
	return s.client.RemoveObject(ctx, s.cfg.Bucket, publicID, minio.RemoveObjectOptions{})
}

func (s *MinioService) DeleteFolder(ctx context.Context, folder string) error {
	objects := s.client.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{
		Prefix:    strings.TrimSuffix(folder, "/") + "/",
		Recursive: true,
	})
	for obj := range objects {
		if obj.Err != nil {
			return fmt.Errorf("list %s: %w", folder, obj.Err)
		}
		if err := s.Delete(ctx, obj.Key); err != nil {
			return fmt.Errorf("remove %s: %w", obj.Key, err)
		}
	}
	return nil
}

func (s *MinioService) objectURL(object string) string {
	return s.cfg.PublicURL + "/" + s.cfg.Bucket + "/" + object
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/avif":
		return ".avif"
	}
	return ""
}
