package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

// providerRepository is the PostgreSQL-backed implementation of
// [ProviderRepository]. The directory listing is public, profile reads and
// writes are keyed by the owning user.
type providerRepository struct {
	*DB
	logger *logger.Logger
}

// NewProviderRepository constructs a [ProviderRepository] backed by db.
func NewProviderRepository(db *DB, logger *logger.Logger) ProviderRepository {
	return &providerRepository{DB: db, logger: logger}
}

func (r *providerRepository) ListProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProvidersQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "providerRepository.ListProviders").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "providerRepository.ListProviders").Msg("failed to list providers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	providers := make([]models.Provider, 0)
	for rows.Next() {
		p, scanErr := scanProvider(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		providers = append(providers, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return providers, nil
}

func (r *providerRepository) GetProviderByUser(ctx context.Context, userID string) (models.Provider, error) {
	p, err := scanProvider(r.DB.QueryRowContext(ctx, selectProviderByUser, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Provider{}, ErrProviderNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "providerRepository.GetProviderByUser").Str("user_id", userID).Msg("failed to get provider")
		return models.Provider{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return p, nil
}

// UpsertProvider relies on the unique user_id index: the first save inserts
// the row with id and name, later saves update only the fields present in
// update. id and name are ignored for an existing row.
func (r *providerRepository) UpsertProvider(ctx context.Context, id, name string, update models.ProviderUpdate) (models.Provider, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertProviderQuery(id, name, update)
	if err != nil {
		log.Err(err).Str("func", "providerRepository.UpsertProvider").Msg("failed to build query")
		return models.Provider{}, err
	}

	p, err := scanProvider(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "providerRepository.UpsertProvider").Str("user_id", update.UserID).Msg("failed to upsert provider")
		return models.Provider{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}
