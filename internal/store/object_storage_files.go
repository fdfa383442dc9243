package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

// fileStorage writes uploads under a local directory. Used in development
// when no S3 bucket is configured.
type fileStorage struct {
	dir           string
	publicBaseURL string
	logger        *logger.Logger
}

// NewFileStorage returns an [ObjectStorage] rooted at cfg.Dir.
func NewFileStorage(cfg config.Files, log *logger.Logger) (ObjectStorage, error) {
	if cfg.Dir == "" {
		return nil, ErrNoStorageConfigured
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &fileStorage{
		dir:           cfg.Dir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        log,
	}, nil
}

func (s *fileStorage) Put(ctx context.Context, object Object) (models.UploadedFile, error) {
	rel := filepath.Clean("/" + objectPath(object))[1:]
	if rel == "" {
		return models.UploadedFile{}, fmt.Errorf("empty object key")
	}
	path := filepath.Join(s.dir, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return models.UploadedFile{}, fmt.Errorf("create object dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileStorage.Put").Str("path", path).Msg("failed to create file")
		return models.UploadedFile{}, fmt.Errorf("create %s: %w", rel, err)
	}
	defer f.Close()

	if _, err = io.Copy(f, object.Body); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileStorage.Put").Str("path", path).Msg("failed to write file")
		return models.UploadedFile{}, fmt.Errorf("write %s: %w", rel, err)
	}

	return models.UploadedFile{Key: object.Key, URL: s.publicBaseURL + "/" + filepath.ToSlash(rel)}, nil
}
