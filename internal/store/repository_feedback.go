package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

// feedbackRepository is the PostgreSQL-backed implementation of
// [FeedbackRepository]. Owner-side reads and status changes are predicated
// on user_id. Public inserts resolve the owner from the QR code row.
type feedbackRepository struct {
	*DB
	logger *logger.Logger
}

// NewFeedbackRepository constructs a [FeedbackRepository] backed by db.
func NewFeedbackRepository(db *DB, logger *logger.Logger) FeedbackRepository {
	return &feedbackRepository{DB: db, logger: logger}
}

// ListFeedbacks returns the feedbacks matching filter, newest first, with
// the exact number of matching rows.
func (r *feedbackRepository) ListFeedbacks(ctx context.Context, filter models.FeedbackFilter) (models.FeedbackList, error) {
	log := logger.FromContext(ctx)

	listQuery, listArgs, countQuery, countArgs, err := buildListFeedbacksQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "feedbackRepository.ListFeedbacks").Msg("failed to build query")
		return models.FeedbackList{}, err
	}

	feedbacks, err := r.queryFeedbacks(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "feedbackRepository.ListFeedbacks").Str("user_id", filter.UserID).Msg("failed to list feedbacks")
		return models.FeedbackList{}, err
	}

	var total int
	if err = r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "feedbackRepository.ListFeedbacks").Str("user_id", filter.UserID).Msg("failed to count feedbacks")
		return models.FeedbackList{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.FeedbackList{Feedbacks: feedbacks, TotalCount: total}, nil
}

func (r *feedbackRepository) RecentFeedbacks(ctx context.Context, userID string, limit uint64) ([]models.Feedback, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentFeedbacksQuery(userID, limit)
	if err != nil {
		log.Err(err).Str("func", "feedbackRepository.RecentFeedbacks").Msg("failed to build query")
		return nil, err
	}

	feedbacks, err := r.queryFeedbacks(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "feedbackRepository.RecentFeedbacks").Str("user_id", userID).Msg("failed to list recent feedbacks")
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) MapPoints(ctx context.Context, userID string) ([]models.FeedbackMapPoint, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectMapPoints, userID)
	if err != nil {
		log.Err(err).Str("func", "feedbackRepository.MapPoints").Str("user_id", userID).Msg("failed to query map points")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	points := make([]models.FeedbackMapPoint, 0)
	for rows.Next() {
		var p models.FeedbackMapPoint
		if err = rows.Scan(&p.ID, &p.Lat, &p.Lng); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		points = append(points, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return points, nil
}

func (r *feedbackRepository) UpdateFeedbackStatus(ctx context.Context, id, userID string, status models.FeedbackStatus) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	fb, err := scanFeedback(r.DB.QueryRowContext(ctx, updateFeedbackStatus, string(status), id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Feedback{}, ErrFeedbackNotFound
		}
		log.Err(err).Str("func", "feedbackRepository.UpdateFeedbackStatus").Str("id", id).Msg("failed to update status")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return fb, nil
}

// InsertPublicFeedback stores feedback under the owner of its QR code.
//
// Inside one transaction it locks the active QR code row, inserts the
// feedback, increments the QR code feedback counter and recomputes the
// owner's provider aggregates. An inactive or unknown QR code yields
// [ErrQRCodeNotFound] and nothing is written.
func (r *feedbackRepository) InsertPublicFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "feedbackRepository.InsertPublicFeedback").Msg("failed to begin transaction")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if feedback.QRCodeID != nil {
		var ownerID string
		if err = tx.QueryRowContext(ctx, lockActiveQRCode, *feedback.QRCodeID).Scan(&ownerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.Feedback{}, ErrQRCodeNotFound
			}
			log.Err(err).Str("func", "feedbackRepository.InsertPublicFeedback").Msg("failed to lock qr code")
			return models.Feedback{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		feedback.UserID = ownerID
	}

	inserted, err := scanFeedback(tx.QueryRowContext(ctx, insertFeedback,
		feedback.ID,
		feedback.UserID,
		feedback.QRCodeID,
		feedback.Rating,
		feedback.Comment,
		feedback.CustomerName,
		feedback.CustomerEmail,
		feedback.Location,
		feedback.Latitude,
		feedback.Longitude,
		string(feedback.Status),
		feedback.Source,
	))
	if err != nil {
		log.Err(err).Str("func", "feedbackRepository.InsertPublicFeedback").Str("user_id", feedback.UserID).Msg("failed to insert feedback")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if feedback.QRCodeID != nil {
		if _, err = tx.ExecContext(ctx, incrementQRCodeFeedbacks, *feedback.QRCodeID); err != nil {
			log.Err(err).Str("func", "feedbackRepository.InsertPublicFeedback").Msg("failed to increment qr code feedbacks")
			return models.Feedback{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = recomputeProviderAggregates(ctx, tx, inserted.UserID); err != nil {
		log.Err(err).Str("func", "feedbackRepository.InsertPublicFeedback").Str("user_id", inserted.UserID).Msg("failed to recompute provider aggregates")
		return models.Feedback{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "feedbackRepository.InsertPublicFeedback").Msg("failed to commit transaction")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return inserted, nil
}

// recomputeProviderAggregates refreshes average_rating, nps_score,
// total_feedbacks and ranking_score of the user's provider profile.
// Users without a profile are skipped.
func recomputeProviderAggregates(ctx context.Context, tx *sql.Tx, userID string) error {
	var (
		plan     models.Plan
		verified bool
	)
	if err := tx.QueryRowContext(ctx, lockProviderForAggregates, userID).Scan(&plan, &verified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var summary models.RatingSummary
	if err := tx.QueryRowContext(ctx, selectRatingSummaryAll, userID).
		Scan(&summary.Total, &summary.Promoters, &summary.Detractors, &summary.AverageRating); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	nps := summary.NPS()
	ranking := models.RankingScore(plan, nps, summary.AverageRating, verified, summary.Total)
	if _, err := tx.ExecContext(ctx, updateProviderAggregates, summary.AverageRating, nps, summary.Total, ranking, userID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *feedbackRepository) GetFeedback(ctx context.Context, id string) (models.Feedback, error) {
	fb, err := scanFeedback(r.DB.QueryRowContext(ctx, selectFeedbackByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Feedback{}, ErrFeedbackNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "feedbackRepository.GetFeedback").Str("id", id).Msg("failed to get feedback")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return fb, nil
}

// ListUnanalyzed returns the oldest feedbacks with a non-blank comment that
// have not been analyzed yet.
func (r *feedbackRepository) ListUnanalyzed(ctx context.Context, limit uint64) ([]models.Feedback, error) {
	feedbacks, err := r.queryFeedbacks(ctx, listUnanalyzedFeedbacks, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "feedbackRepository.ListUnanalyzed").Msg("failed to list unanalyzed feedbacks")
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) SaveSentiment(ctx context.Context, id string, result models.SentimentResult, analyzedAt time.Time) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	topics, err := topicsParam(result.Topics)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("encode topics: %w", err)
	}

	fb, err := scanFeedback(r.DB.QueryRowContext(ctx, saveFeedbackSentiment, string(result.Sentiment), result.Score, topics, analyzedAt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Feedback{}, ErrFeedbackNotFound
		}
		log.Err(err).Str("func", "feedbackRepository.SaveSentiment").Str("id", id).Msg("failed to save sentiment")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return fb, nil
}

func (r *feedbackRepository) queryFeedbacks(ctx context.Context, query string, args ...any) ([]models.Feedback, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	feedbacks := make([]models.Feedback, 0)
	for rows.Next() {
		fb, scanErr := scanFeedback(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		feedbacks = append(feedbacks, fb)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return feedbacks, nil
}
