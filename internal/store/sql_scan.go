package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/veepo/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Metadata.DisplayName,
		&user.Metadata.AvatarURL,
		&user.CreatedAt,
	)
	return user, err
}

func scanQRCode(row rowScanner) (models.QRCode, error) {
	var qr models.QRCode
	err := row.Scan(
		&qr.ID,
		&qr.UserID,
		&qr.Name,
		&qr.Description,
		&qr.TargetURL,
		&qr.IsActive,
		&qr.Scans,
		&qr.Feedbacks,
		&qr.ColorScheme,
		&qr.LogoURL,
		&qr.AppURL,
		&qr.CreatedAt,
	)
	return qr, err
}

func scanFeedback(row rowScanner) (models.Feedback, error) {
	var (
		fb        models.Feedback
		sentiment sql.NullString
		topics    []byte
	)
	err := row.Scan(
		&fb.ID,
		&fb.UserID,
		&fb.QRCodeID,
		&fb.Rating,
		&fb.Comment,
		&fb.CustomerName,
		&fb.CustomerEmail,
		&fb.Location,
		&fb.Latitude,
		&fb.Longitude,
		&fb.Status,
		&fb.Source,
		&sentiment,
		&fb.SentimentScore,
		&topics,
		&fb.AnalyzedAt,
		&fb.CreatedAt,
	)
	if err != nil {
		return models.Feedback{}, err
	}

	if sentiment.Valid {
		s := models.Sentiment(sentiment.String)
		fb.Sentiment = &s
	}
	if len(topics) > 0 {
		if err = json.Unmarshal(topics, &fb.Topics); err != nil {
			return models.Feedback{}, fmt.Errorf("decode topics: %w", err)
		}
	}

	return fb, nil
}

func scanCampaign(row rowScanner) (models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.QRCodeID,
		&c.QRCodeName,
		&c.Name,
		&c.Description,
		&c.StartDate,
		&c.EndDate,
		&c.IsActive,
		&c.CreatedAt,
	)
	return c, err
}

func scanProvider(row rowScanner) (models.Provider, error) {
	var p models.Provider
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.BusinessName,
		&p.Segment,
		&p.Description,
		&p.AvatarURL,
		&p.CoverImageURL,
		&p.City,
		&p.State,
		&p.Phone,
		&p.WebsiteURL,
		&p.InstagramURL,
		&p.CNAE,
		&p.Plan,
		&p.IsVerified,
		&p.AverageRating,
		&p.NPSScore,
		&p.TotalFeedbacks,
		&p.RankingScore,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func scanNotification(row rowScanner) (models.Notification, error) {
	var n models.Notification
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Message,
		&n.Link,
		&n.IsRead,
		&n.CreatedAt,
	)
	return n, err
}
