package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/veepo/models"
)

// ChangePublisher announces row changes to realtime subscribers. Publishing
// never fails the write that caused it.
type ChangePublisher interface {
	PublishChange(ctx context.Context, entity models.Entity, changeType models.ChangeType, userID string, record any)
}

type clock func() time.Time

func systemClock() time.Time {
	return time.Now()
}

// MaxImageSize is the largest accepted image upload.
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// imageExtension picks the stored file extension from the content type,
// falling back to the file name for generic content types.
func imageExtension(file FileUpload) (string, error) {
	if file.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	contentType := strings.ToLower(strings.TrimSpace(strings.Split(file.ContentType, ";")[0]))
	if ext, ok := imageExtensions[contentType]; ok {
		return ext, nil
	}

	if contentType == "" || contentType == "application/octet-stream" {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
		if ext == "jpeg" {
			ext = "jpg"
		}
		for _, known := range imageExtensions {
			if ext == known {
				return ext, nil
			}
		}
	}

	return "", ErrUnsupportedImageType
}
