package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

// QRCodeLogoBucket holds uploaded QR code logos.
const QRCodeLogoBucket = "qr-codes"

type qrCodeService struct {
	qrCodes   store.QRCodeRepository
	objects   store.ObjectStorage
	publisher ChangePublisher
	ids       *utils.UUIDGenerator
	now       clock

	publicURL string
	logger    *logger.Logger
}

// NewQRCodeService returns the owner-side QR code service. publicURL is the
// base of the customer-facing app; new codes point to {publicURL}/feedback/{id}.
func NewQRCodeService(qrCodes store.QRCodeRepository, objects store.ObjectStorage, publisher ChangePublisher, publicURL string, log *logger.Logger) QRCodeService {
	return &qrCodeService{
		qrCodes:   qrCodes,
		objects:   objects,
		publisher: publisher,
		ids:       utils.NewUUIDGenerator(),
		now:       systemClock,
		publicURL: utils.NormalizeBaseURL(publicURL),
		logger:    log,
	}
}

// CreateQRCode inserts a QR code owned by qrCode.UserID. The target URL is
// generated here and never accepted from the caller. New codes are active
// unless IsActive says otherwise.
func (s *qrCodeService) CreateQRCode(ctx context.Context, qrCode models.QRCodeCreate) (models.QRCode, error) {
	id := s.ids.Generate()

	isActive := true
	if qrCode.IsActive != nil {
		isActive = *qrCode.IsActive
	}
	colorScheme := qrCode.ColorScheme
	if colorScheme == "" {
		colorScheme = models.DefaultColorScheme
	}

	created, err := s.qrCodes.CreateQRCode(ctx, models.QRCode{
		ID:          id,
		UserID:      qrCode.UserID,
		Name:        strings.TrimSpace(qrCode.Name),
		Description: strings.TrimSpace(qrCode.Description),
		TargetURL:   s.publicURL + "/feedback/" + id,
		IsActive:    isActive,
		ColorScheme: colorScheme,
		LogoURL:     qrCode.LogoURL,
		AppURL:      qrCode.AppURL,
	})
	if err != nil {
		return models.QRCode{}, fmt.Errorf("create qr code: %w", err)
	}

	s.publisher.PublishChange(ctx, models.EntityQRCodes, models.ChangeInsert, created.UserID, created)
	return created, nil
}

func (s *qrCodeService) ListQRCodes(ctx context.Context, userID string) ([]models.QRCode, error) {
	return s.qrCodes.ListQRCodes(ctx, userID)
}

func (s *qrCodeService) UpdateQRCode(ctx context.Context, update models.QRCodeUpdate) (models.QRCode, error) {
	updated, err := s.qrCodes.UpdateQRCode(ctx, update)
	if err != nil {
		return models.QRCode{}, err
	}

	s.publisher.PublishChange(ctx, models.EntityQRCodes, models.ChangeUpdate, updated.UserID, updated)
	return updated, nil
}

func (s *qrCodeService) DeleteQRCode(ctx context.Context, id, userID string) error {
	if err := s.qrCodes.DeleteQRCode(ctx, id, userID); err != nil {
		return err
	}

	s.publisher.PublishChange(ctx, models.EntityQRCodes, models.ChangeDelete, userID, models.QRCode{ID: id, UserID: userID})
	return nil
}

// UploadLogo stores an image and points the QR code's logo_url at it.
func (s *qrCodeService) UploadLogo(ctx context.Context, id, userID string, file FileUpload) (models.UploadedFile, error) {
	ext, err := imageExtension(file)
	if err != nil {
		return models.UploadedFile{}, err
	}

	uploaded, err := s.objects.Put(ctx, store.Object{
		Bucket:      QRCodeLogoBucket,
		Key:         fmt.Sprintf("%s/%s-%d.%s", userID, id, s.now().UnixMilli(), ext),
		ContentType: file.ContentType,
		Size:        file.Size,
		Body:        file.Body,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "qrCodeService.UploadLogo").Str("id", id).Msg("logo upload failed")
		return models.UploadedFile{}, fmt.Errorf("upload logo: %w", err)
	}

	if _, err = s.UpdateQRCode(ctx, models.QRCodeUpdate{ID: id, UserID: userID, LogoURL: &uploaded.URL}); err != nil {
		return models.UploadedFile{}, err
	}

	return uploaded, nil
}
