package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

type campaignRepository struct {
	*DB
	logger *logger.Logger
}

// NewCampaignRepository constructs a [CampaignRepository] backed by db.
func NewCampaignRepository(db *DB, logger *logger.Logger) CampaignRepository {
	return &campaignRepository{DB: db, logger: logger}
}

func (r *campaignRepository) ListCampaigns(ctx context.Context, userID string) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCampaignsQuery(userID, "")
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.ListCampaigns").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.ListCampaigns").Str("user_id", userID).Msg("failed to list campaigns")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	campaigns := make([]models.Campaign, 0)
	for rows.Next() {
		c, scanErr := scanCampaign(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		campaigns = append(campaigns, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return campaigns, nil
}

func (r *campaignRepository) GetCampaign(ctx context.Context, id, userID string) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCampaignsQuery(userID, id)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.GetCampaign").Msg("failed to build query")
		return models.Campaign{}, err
	}

	c, err := scanCampaign(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Campaign{}, ErrCampaignNotFound
		}
		log.Err(err).Str("func", "campaignRepository.GetCampaign").Str("id", id).Msg("failed to get campaign")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return c, nil
}

// CreateCampaign inserts the campaign and reads it back joined with the
// name of its QR code.
func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, createCampaign,
		campaign.ID,
		campaign.UserID,
		campaign.QRCodeID,
		campaign.Name,
		campaign.Description,
		campaign.StartDate,
		campaign.EndDate,
		campaign.IsActive,
	)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.CreateCampaign").Str("user_id", campaign.UserID).Msg("failed to insert campaign")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Campaign{}, ErrInvalidReference
		}
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetCampaign(ctx, campaign.ID, campaign.UserID)
}

// UpdateCampaign applies the non-nil fields of input to the campaign owned
// by input.UserID and returns the stored row.
func (r *campaignRepository) UpdateCampaign(ctx context.Context, input models.CampaignInput) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCampaignQuery(input)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.UpdateCampaign").Msg("failed to build query")
		return models.Campaign{}, err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.UpdateCampaign").Str("id", input.ID).Msg("failed to update campaign")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Campaign{}, ErrInvalidReference
		}
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = requireAffected(result, ErrCampaignNotFound); err != nil {
		return models.Campaign{}, err
	}

	return r.GetCampaign(ctx, input.ID, input.UserID)
}

func (r *campaignRepository) DeleteCampaign(ctx context.Context, id, userID string) error {
	result, err := r.DB.ExecContext(ctx, deleteCampaign, id, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "campaignRepository.DeleteCampaign").Str("id", id).Msg("failed to delete campaign")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrCampaignNotFound)
}
