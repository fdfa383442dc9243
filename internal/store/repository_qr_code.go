package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

type qrCodeRepository struct {
	*DB
	logger *logger.Logger
}

// NewQRCodeRepository constructs a [QRCodeRepository] backed by db.
func NewQRCodeRepository(db *DB, logger *logger.Logger) QRCodeRepository {
	return &qrCodeRepository{DB: db, logger: logger}
}

func (r *qrCodeRepository) CreateQRCode(ctx context.Context, qrCode models.QRCode) (models.QRCode, error) {
	log := logger.FromContext(ctx)

	created, err := scanQRCode(r.DB.QueryRowContext(ctx, createQRCode,
		qrCode.ID,
		qrCode.UserID,
		qrCode.Name,
		qrCode.Description,
		qrCode.TargetURL,
		qrCode.IsActive,
		qrCode.ColorScheme,
		qrCode.LogoURL,
		qrCode.AppURL,
	))
	if err != nil {
		log.Err(err).Str("func", "qrCodeRepository.CreateQRCode").Str("user_id", qrCode.UserID).Msg("failed to insert qr code")
		return models.QRCode{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *qrCodeRepository) ListQRCodes(ctx context.Context, userID string) ([]models.QRCode, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listQRCodes, userID)
	if err != nil {
		log.Err(err).Str("func", "qrCodeRepository.ListQRCodes").Str("user_id", userID).Msg("failed to list qr codes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	qrCodes := make([]models.QRCode, 0)
	for rows.Next() {
		qr, scanErr := scanQRCode(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "qrCodeRepository.ListQRCodes").Msg("failed to scan qr code row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		qrCodes = append(qrCodes, qr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return qrCodes, nil
}

// UpdateQRCode applies the non-nil fields of update to the row owned by
// update.UserID. Returns [ErrQRCodeNotFound] when no such row exists.
func (r *qrCodeRepository) UpdateQRCode(ctx context.Context, update models.QRCodeUpdate) (models.QRCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQRCodeQuery(update)
	if err != nil {
		log.Err(err).Str("func", "qrCodeRepository.UpdateQRCode").Msg("failed to build query")
		return models.QRCode{}, err
	}

	updated, err := scanQRCode(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QRCode{}, ErrQRCodeNotFound
		}
		log.Err(err).Str("func", "qrCodeRepository.UpdateQRCode").Str("id", update.ID).Msg("failed to update qr code")
		return models.QRCode{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *qrCodeRepository) DeleteQRCode(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteQRCode, id, userID)
	if err != nil {
		log.Err(err).Str("func", "qrCodeRepository.DeleteQRCode").Str("id", id).Msg("failed to delete qr code")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrQRCodeNotFound)
}

func (r *qrCodeRepository) ScanQRCode(ctx context.Context, id string) (models.PublicQRCode, error) {
	log := logger.FromContext(ctx)

	var qr models.PublicQRCode
	err := r.DB.QueryRowContext(ctx, countQRCodeScan, id).Scan(&qr.ID, &qr.Name, &qr.Description, &qr.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PublicQRCode{}, ErrQRCodeNotFound
		}
		log.Err(err).Str("func", "qrCodeRepository.ScanQRCode").Str("id", id).Msg("failed to count scan")
		return models.PublicQRCode{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return qr, nil
}
