package services

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// Upload sends one image to Cloudinary. Size and content type are already
// validated by the caller; Cloudinary re-detects the format itself.
func (s *CloudinaryService) Upload(ctx context.Context, r io.Reader, size int64, contentType, folder, name string) (StoredImage, error) {
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if name != "" {
		params.PublicID = name
	}

	result, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return StoredImage{}, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return StoredImage{}, fmt.Errorf("upload successful but no URL returned")
	}

	return StoredImage{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Delete removes an image by its public ID
func (s *CloudinaryService) Delete(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// DeleteFolder removes every asset under folder, then the folder itself
func (s *CloudinaryService) DeleteFolder(ctx context.Context, folder string) error {
	if _, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folder},
	}); err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folder, err)
	}

	// Cloudinary usually drops empty folders on its own.
	if _, err := s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folder}); err != nil {
		log.Printf("[cloudinary] folder %s not removed: %v", folder, err)
	}
	return nil
}
