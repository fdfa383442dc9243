package models

import "time"

// QRCode is a shareable identifier whose scan target is the public feedback form.
// Scans and Feedbacks are maintained by the server.
type QRCode struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TargetURL   string    `json:"target_url"`
	IsActive    bool      `json:"is_active"`
	Scans       int       `json:"scans"`
	Feedbacks   int       `json:"feedbacks"`
	ColorScheme string    `json:"color_scheme"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	AppURL      *string   `json:"app_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PrimaryKey implements the realtime list key contract.
func (q QRCode) PrimaryKey() string {
	return q.ID
}

// QRCodeCreate is the argument set of the create-QR-code call.
type QRCodeCreate struct {
	UserID      string  `json:"-"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ColorScheme string  `json:"color_scheme"`
	IsActive    *bool   `json:"is_active,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	AppURL      *string `json:"app_url,omitempty"`
}

// QRCodeUpdate is a partial update. Nil fields are left untouched.
type QRCodeUpdate struct {
	ID          string  `json:"-"`
	UserID      string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ColorScheme *string `json:"color_scheme,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u QRCodeUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.ColorScheme == nil && u.IsActive == nil && u.LogoURL == nil
}

// PublicQRCode is the anonymous view of a QR code shown on the feedback form.
type PublicQRCode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      string `json:"user_id"`
}

// DefaultColorScheme is used when a QR code is created without one.
const DefaultColorScheme = "#DDF247"
