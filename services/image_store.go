package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jsabonet/milagre-car-site-sub000/config"
)

var (
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrImageTooLarge        = errors.New("image exceeds the upload size limit")
	ErrNoImageStore         = errors.New("no image store configured")
)

// StoredImage is where an uploaded picture ended up.
type StoredImage struct {
	URL      string
	PublicID string
}

// ImageStore keeps car pictures. Cloudinary and MinIO both implement it.
type ImageStore interface {
	Upload(ctx context.Context, r io.Reader, size int64, contentType, folder, name string) (StoredImage, error)
	Delete(ctx context.Context, publicID string) error
	DeleteFolder(ctx context.Context, folder string) error
}

// CarImageFolder is the folder every picture of one car is stored under.
func CarImageFolder(carID string) string {
	return "milagre-cars/cars/" + carID
}

// SniffImage detects the content type of r from its bytes and checks it
// against policy. The returned reader replays the sniffed prefix.
func SniffImage(r io.Reader, size int64, policy config.UploadPolicy) (string, io.Reader, error) {
	if policy.MaxFileSize > 0 && size > policy.MaxFileSize {
		return "", nil, ErrImageTooLarge
	}

	var head bytes.Buffer
	mt, err := mimetype.DetectReader(io.TeeReader(r, &head))
	if err != nil {
		return "", nil, fmt.Errorf("detect image type: %w", err)
	}

	contentType := strings.Split(mt.String(), ";")[0]
	if !policy.Allows(contentType) {
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedImageType, contentType)
	}
	return contentType, io.MultiReader(&head, r), nil
}

var imageStore ImageStore

// InitImageStore picks the backend named by IMAGE_STORE (cloudinary, the
// default, or minio).
func InitImageStore(ctx context.Context) error {
	switch strings.ToLower(config.GetEnv("IMAGE_STORE", "cloudinary")) {
	case "minio":
		store, err := NewMinioService(ctx, MinioConfigFromEnv())
		if err != nil {
			return err
		}
		imageStore = store
	default:
		store, err := NewCloudinaryService(
			os.Getenv("CLOUDINARY_CLOUD_NAME"),
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"),
		)
		if err != nil {
			return err
		}
		imageStore = store
	}
	log.Printf("✅ Image store ready (%T)", imageStore)
	return nil
}

// GetImageStore returns the configured store, or nil before InitImageStore.
func GetImageStore() ImageStore {
	return imageStore
}

// SetImageStore replaces the store; tests use it to install a fake.
func SetImageStore(s ImageStore) {
	imageStore = s
}
