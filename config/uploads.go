package config

import (
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// UploadPolicy bounds what the back office may upload as car pictures.
type UploadPolicy struct {
	MaxFileSize      int64    `yaml:"max_file_size"`
	AllowedFileTypes []string `yaml:"allowed_file_types"`
	MaxImagesPerCar  int      `yaml:"max_images_per_car"`
}

// DefaultUploadPolicy is used when no uploads.yaml is present.
func DefaultUploadPolicy() UploadPolicy {
	return UploadPolicy{
		MaxFileSize:      10 << 20,
		AllowedFileTypes: []string{"image/jpeg", "image/png", "image/webp", "image/avif"},
		MaxImagesPerCar:  20,
	}
}

// LoadUploadPolicy reads UPLOADS_CONFIG_FILE (default config/uploads.yaml)
// over the defaults. A missing file is not an error.
func LoadUploadPolicy() UploadPolicy {
	policy := DefaultUploadPolicy()

	path := strings.TrimSpace(os.Getenv("UPLOADS_CONFIG_FILE"))
	if path == "" {
		path = "config/uploads.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return policy
	}

	override, err := ParseUploadPolicy(data)
	if err != nil {
		log.Printf("⚠️  ignoring %s: %v", path, err)
		return policy
	}
	if override.MaxFileSize > 0 {
		policy.MaxFileSize = override.MaxFileSize
	}
	if len(override.AllowedFileTypes) > 0 {
		policy.AllowedFileTypes = override.AllowedFileTypes
	}
	if override.MaxImagesPerCar > 0 {
		policy.MaxImagesPerCar = override.MaxImagesPerCar
	}
	return policy
}

func ParseUploadPolicy(data []byte) (UploadPolicy, error) {
	var p UploadPolicy
	err := yaml.Unmarshal(data, &p)
	return p, err
}

// Allows reports whether contentType is on the allow-list.
func (p UploadPolicy) Allows(contentType string) bool {
	for _, t := range p.AllowedFileTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
