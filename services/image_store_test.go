package services

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsabonet/milagre-car-site-sub000/config"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestSniffImageAcceptsPNGAndReplaysBytes(t *testing.T) {
	contentType, r, err := SniffImage(bytes.NewReader(pngHeader), int64(len(pngHeader)), config.DefaultUploadPolicy())
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	replayed, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, replayed)
}

func TestSniffImageRejectsNonImages(t *testing.T) {
	body := "definitely not a picture"
	_, _, err := SniffImage(strings.NewReader(body), int64(len(body)), config.DefaultUploadPolicy())
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestSniffImageRejectsOversizedUploads(t *testing.T) {
	policy := config.DefaultUploadPolicy()
	policy.MaxFileSize = 4
	_, _, err := SniffImage(bytes.NewReader(pngHeader), int64(len(pngHeader)), policy)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestCarImageFolder(t *testing.T) {
	assert.Equal(t, "milagre-cars/cars/abc", CarImageFolder("abc"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, "", extensionFor("application/pdf"))
}
