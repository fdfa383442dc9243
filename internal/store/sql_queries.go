package store

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/veepo/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "email", "password_hash", "display_name", "avatar_url", "created_at"}

	qrCodeColumns = []string{
		"id", "user_id", "name", "description", "target_url", "is_active",
		"scans", "feedbacks", "color_scheme", "logo_url", "app_url", "created_at",
	}

	feedbackColumns = []string{
		"id", "user_id", "qr_code_id", "rating", "comment", "customer_name", "customer_email",
		"location", "latitude", "longitude", "status", "source",
		"sentiment", "sentiment_score", "topics", "analyzed_at", "created_at",
	}

	campaignColumns = []string{
		"c.id", "c.user_id", "c.qr_code_id", "q.name", "c.name", "c.description",
		"c.start_date", "c.end_date", "c.is_active", "c.created_at",
	}

	providerColumns = []string{
		"id", "user_id", "name", "business_name", "segment", "description", "avatar_url",
		"cover_image_url", "city", "state", "phone", "website_url", "instagram_url", "cnae",
		"plan", "is_verified", "average_rating", "nps_score", "total_feedbacks", "ranking_score",
		"created_at", "updated_at",
	}

	notificationColumns = []string{"id", "user_id", "message", "link", "is_read", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

var (
	createUser = `INSERT INTO users (id, email, password_hash, display_name, avatar_url)
    VALUES ($1, $2, $3, $4, $5)
    ` + returning(userColumns)

	findUserByEmail = `SELECT ` + strings.Join(userColumns, ", ") + `
    FROM users
    WHERE lower(email) = lower($1)`

	findUserByID = `SELECT ` + strings.Join(userColumns, ", ") + `
    FROM users
    WHERE id = $1`

	updateUserPassword = `UPDATE users SET password_hash = $1 WHERE id = $2`

	createQRCode = `INSERT INTO qr_codes (id, user_id, name, description, target_url, is_active, color_scheme, logo_url, app_url)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    ` + returning(qrCodeColumns)

	listQRCodes = `SELECT ` + strings.Join(qrCodeColumns, ", ") + `
    FROM qr_codes
    WHERE user_id = $1
    ORDER BY created_at DESC`

	deleteQRCode = `DELETE FROM qr_codes WHERE id = $1 AND user_id = $2`

	countQRCodeScan = `UPDATE qr_codes SET scans = scans + 1
    WHERE id = $1 AND is_active
    RETURNING id, name, description, user_id`

	lockActiveQRCode = `SELECT user_id FROM qr_codes WHERE id = $1 AND is_active FOR UPDATE`

	incrementQRCodeFeedbacks = `UPDATE qr_codes SET feedbacks = feedbacks + 1 WHERE id = $1`

	insertFeedback = `INSERT INTO feedbacks (id, user_id, qr_code_id, rating, comment, customer_name, customer_email, location, latitude, longitude, status, source)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    ` + returning(feedbackColumns)

	selectFeedbackByID = `SELECT ` + strings.Join(feedbackColumns, ", ") + `
    FROM feedbacks
    WHERE id = $1`

	updateFeedbackStatus = `UPDATE feedbacks SET status = $1
    WHERE id = $2 AND user_id = $3
    ` + returning(feedbackColumns)

	listUnanalyzedFeedbacks = `SELECT ` + strings.Join(feedbackColumns, ", ") + `
    FROM feedbacks
    WHERE analyzed_at IS NULL AND btrim(comment) <> ''
    ORDER BY created_at
    LIMIT $1`

	saveFeedbackSentiment = `UPDATE feedbacks SET sentiment = $1, sentiment_score = $2, topics = $3, analyzed_at = $4
    WHERE id = $5
    ` + returning(feedbackColumns)

	selectMapPoints = `SELECT id, latitude, longitude
    FROM feedbacks
    WHERE user_id = $1 AND latitude IS NOT NULL AND longitude IS NOT NULL
    ORDER BY created_at DESC`

	selectRatingSummaryAll = `SELECT COUNT(*),
        COUNT(*) FILTER (WHERE rating = 5),
        COUNT(*) FILTER (WHERE rating <= 3),
        COALESCE(AVG(rating), 0)
    FROM feedbacks
    WHERE user_id = $1`

	lockProviderForAggregates = `SELECT plan, is_verified FROM providers WHERE user_id = $1 FOR UPDATE`

	updateProviderAggregates = `UPDATE providers
    SET average_rating = $1, nps_score = $2, total_feedbacks = $3, ranking_score = $4, updated_at = now()
    WHERE user_id = $5`

	createCampaign = `INSERT INTO campaigns (id, user_id, qr_code_id, name, description, start_date, end_date, is_active)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	deleteCampaign = `DELETE FROM campaigns WHERE id = $1 AND user_id = $2`

	selectProviderByUser = `SELECT ` + strings.Join(providerColumns, ", ") + `
    FROM providers
    WHERE user_id = $1`

	createNotification = `INSERT INTO notifications (id, user_id, message, link)
    VALUES ($1, $2, $3, $4)
    ` + returning(notificationColumns)

	listNotifications = `SELECT ` + strings.Join(notificationColumns, ", ") + `
    FROM notifications
    WHERE user_id = $1
    ORDER BY created_at DESC
    LIMIT $2`

	countUnreadNotifications = `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`

	markNotificationRead = `UPDATE notifications SET is_read = TRUE
    WHERE id = $1 AND user_id = $2
    ` + returning(notificationColumns)

	markAllNotificationsRead = `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`

	selectDashboardStats = `SELECT
        (SELECT COUNT(*) FROM feedbacks WHERE user_id = $1 AND created_at >= $2 AND created_at < $3),
        (SELECT COALESCE(AVG(rating), 0) FROM feedbacks WHERE user_id = $1 AND created_at >= $2 AND created_at < $3),
        (SELECT COUNT(*) FROM qr_codes WHERE user_id = $1 AND is_active),
        (SELECT COUNT(*) FROM feedbacks WHERE user_id = $1 AND status = 'pending' AND created_at >= $2 AND created_at < $3)`

	selectNPSTrend = `SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
        COUNT(*),
        COUNT(*) FILTER (WHERE rating = 5),
        COUNT(*) FILTER (WHERE rating <= 3)
    FROM feedbacks
    WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
    GROUP BY day
    ORDER BY day`

	selectRatingSummaryRange = selectRatingSummaryAll + ` AND created_at >= $2 AND created_at < $3`

	selectBenchmark = `SELECT metric, value FROM benchmarks WHERE cnae = $1`
)

// buildListFeedbacksQuery returns the page query and the count query for filter.
// Both share the same predicate so total_count matches the listed rows.
func buildListFeedbacksQuery(filter models.FeedbackFilter) (string, []any, string, []any, error) {
	listBuilder := applyFeedbackFilter(psql.Select(feedbackColumns...).From("feedbacks"), filter).
		OrderBy("created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(filter.Limit)
	}

	listQuery, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return "", nil, "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	countQuery, countArgs, err := applyFeedbackFilter(psql.Select("COUNT(*)").From("feedbacks"), filter).ToSql()
	if err != nil {
		return "", nil, "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return listQuery, listArgs, countQuery, countArgs, nil
}

func applyFeedbackFilter(b sq.SelectBuilder, filter models.FeedbackFilter) sq.SelectBuilder {
	b = b.Where(sq.Eq{"user_id": filter.UserID})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		b = b.Where(sq.Eq{"status": statuses})
	}
	if filter.StartDate != nil {
		b = b.Where(sq.GtOrEq{"created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		// end date is inclusive
		b = b.Where(sq.Lt{"created_at": filter.EndDate.AddDate(0, 0, 1)})
	}

	return b
}

func buildRecentFeedbacksQuery(userID string, limit uint64) (string, []any, error) {
	query, args, err := psql.Select(feedbackColumns...).
		From("feedbacks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateUserMetadataQuery(userID string, update models.UserMetadataUpdate) (string, []any, error) {
	b := psql.Update("users")
	if update.DisplayName != nil {
		b = b.Set("display_name", *update.DisplayName)
	}
	if update.AvatarURL != nil {
		b = b.Set("avatar_url", *update.AvatarURL)
	}

	query, args, err := b.Where(sq.Eq{"id": userID}).Suffix(returning(userColumns)).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateQRCodeQuery(update models.QRCodeUpdate) (string, []any, error) {
	b := psql.Update("qr_codes")
	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.ColorScheme != nil {
		b = b.Set("color_scheme", *update.ColorScheme)
	}
	if update.IsActive != nil {
		b = b.Set("is_active", *update.IsActive)
	}
	if update.LogoURL != nil {
		b = b.Set("logo_url", *update.LogoURL)
	}

	query, args, err := b.
		Where(sq.Eq{"id": update.ID}).
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix(returning(qrCodeColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectCampaignsQuery(userID, id string) (string, []any, error) {
	b := psql.Select(campaignColumns...).
		From("campaigns c").
		LeftJoin("qr_codes q ON q.id = c.qr_code_id").
		Where(sq.Eq{"c.user_id": userID})
	if id != "" {
		b = b.Where(sq.Eq{"c.id": id})
	}

	query, args, err := b.OrderBy("c.created_at DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateCampaignQuery(input models.CampaignInput) (string, []any, error) {
	b := psql.Update("campaigns")
	if input.QRCodeID != nil {
		if *input.QRCodeID == "" {
			b = b.Set("qr_code_id", nil)
		} else {
			b = b.Set("qr_code_id", *input.QRCodeID)
		}
	}
	if input.Name != nil {
		b = b.Set("name", *input.Name)
	}
	if input.Description != nil {
		b = b.Set("description", *input.Description)
	}
	if input.StartDate != nil {
		b = b.Set("start_date", *input.StartDate)
	}
	if input.EndDate != nil {
		b = b.Set("end_date", *input.EndDate)
	}
	if input.IsActive != nil {
		b = b.Set("is_active", *input.IsActive)
	}

	query, args, err := b.
		Where(sq.Eq{"id": input.ID}).
		Where(sq.Eq{"user_id": input.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListProvidersQuery(filter models.ProviderFilter) (string, []any, error) {
	b := psql.Select(providerColumns...).From("providers")

	if search := strings.TrimSpace(filter.Search); search != "" {
		b = b.Where(sq.ILike{"business_name": "%" + escapeLike(search) + "%"})
	}
	if filter.State != "" {
		b = b.Where(sq.Eq{"state": strings.ToUpper(filter.State)})
	}
	if filter.City != "" {
		b = b.Where(sq.Eq{"city": filter.City})
	}
	if filter.Segment != "" {
		b = b.Where(sq.Eq{"segment": filter.Segment})
	}

	switch filter.SortBy {
	case models.ProviderSortRating:
		b = b.OrderBy("average_rating DESC", "created_at DESC")
	case models.ProviderSortRanking:
		b = b.OrderBy("ranking_score DESC", "created_at DESC")
	default:
		b = b.OrderBy("created_at DESC")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildUpsertProviderQuery inserts a profile or, when the user already has
// one, updates only the fields present in update.
func buildUpsertProviderQuery(id, name string, update models.ProviderUpdate) (string, []any, error) {
	columns := []string{"id", "user_id", "name"}
	values := []any{id, update.UserID, name}

	for _, field := range providerUpdateFields(update) {
		columns = append(columns, field.column)
		values = append(values, field.value)
	}

	sets := make([]string, 0, len(columns))
	for _, column := range columns[3:] {
		sets = append(sets, column+" = EXCLUDED."+column)
	}
	sets = append(sets, "updated_at = now()")

	query, args, err := psql.Insert("providers").
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(sets, ", ") + " " + returning(providerColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type columnValue struct {
	column string
	value  any
}

func providerUpdateFields(update models.ProviderUpdate) []columnValue {
	candidates := []struct {
		column string
		value  *string
	}{
		{"business_name", update.BusinessName},
		{"segment", update.Segment},
		{"description", update.Description},
		{"avatar_url", update.AvatarURL},
		{"cover_image_url", update.CoverImageURL},
		{"city", update.City},
		{"state", update.State},
		{"phone", update.Phone},
		{"website_url", update.WebsiteURL},
		{"instagram_url", update.InstagramURL},
		{"cnae", update.CNAE},
	}

	fields := make([]columnValue, 0, len(candidates))
	for _, c := range candidates {
		if c.value != nil {
			fields = append(fields, columnValue{column: c.column, value: *c.value})
		}
	}
	return fields
}

// topicsParam encodes topics for the JSONB column, NULL when empty.
func topicsParam(topics []string) (any, error) {
	if len(topics) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(topics)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
