package models

import "time"

// Campaign groups feedback collection over an active window, optionally tied to a QR code.
type Campaign struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	QRCodeID    *string    `json:"qr_code_id,omitempty"`
	QRCodeName  *string    `json:"qr_code_name,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CampaignInput is the body of create and update requests.
// On update nil fields are left untouched.
type CampaignInput struct {
	ID          string     `json:"-"`
	UserID      string     `json:"-"`
	QRCodeID    *string    `json:"qr_code_id,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (c Campaign) PrimaryKey() string {
	return c.ID
}
