package store

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		raw, _ := io.ReadAll(params.Body)
		f.body = string(raw)
	}
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Storage_Put(t *testing.T) {
	t.Run("uploads under bucket prefix", func(t *testing.T) {
		client := &fakeS3{}
		storage := newS3Storage(client, config.S3{Bucket: "veepo"}, logger.Nop())

		file, err := storage.Put(testContext(), Object{
			Bucket:      "profiles",
			Key:         "u-1/avatar-1700000000000.png",
			ContentType: "image/png",
			Size:        3,
			Body:        strings.NewReader("png"),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://veepo.s3.amazonaws.com/profiles/u-1/avatar-1700000000000.png", file.URL)
		assert.Equal(t, "u-1/avatar-1700000000000.png", file.Key)
		assert.Equal(t, "veepo", aws.ToString(client.input.Bucket))
		assert.Equal(t, "profiles/u-1/avatar-1700000000000.png", aws.ToString(client.input.Key))
		assert.Equal(t, int64(3), aws.ToInt64(client.input.ContentLength))
		assert.Equal(t, "png", client.body)
	})

	t.Run("custom public url", func(t *testing.T) {
		storage := newS3Storage(&fakeS3{}, config.S3{Bucket: "veepo", PublicBaseURL: "https://cdn.test/"}, logger.Nop())

		file, err := storage.Put(testContext(), Object{Key: "a.png", Body: strings.NewReader("")})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/a.png", file.URL)
	})

	t.Run("upload error", func(t *testing.T) {
		storage := newS3Storage(&fakeS3{err: errors.New("denied")}, config.S3{Bucket: "veepo"}, logger.Nop())

		_, err := storage.Put(testContext(), Object{Key: "a.png", Body: strings.NewReader("")})
		assert.ErrorContains(t, err, "denied")
	})
}

func TestFileStorage_Put(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(config.Files{Dir: dir, PublicBaseURL: "http://localhost:8080/uploads/"}, logger.Nop())
	require.NoError(t, err)

	file, err := storage.Put(testContext(), Object{
		Bucket: "profiles",
		Key:    "u-1/cover-1.jpg",
		Body:   strings.NewReader("jpeg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/profiles/u-1/cover-1.jpg", file.URL)

	raw, err := os.ReadFile(filepath.Join(dir, "profiles", "u-1", "cover-1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(raw))
}

func TestFileStorage_KeyCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(config.Files{Dir: dir}, logger.Nop())
	require.NoError(t, err)

	file, err := storage.Put(testContext(), Object{Key: "../../etc/passwd", Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, "/etc/passwd", file.URL)
	_, err = os.Stat(filepath.Join(dir, "etc", "passwd"))
	assert.NoError(t, err)
}

func TestNewFileStorage_NoDir(t *testing.T) {
	_, err := NewFileStorage(config.Files{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoStorageConfigured)
}
