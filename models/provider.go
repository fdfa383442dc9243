package models

import (
	"math"
	"time"
)

// Plan is the subscription tier of a provider.
type Plan string

const (
	PlanBasic      Plan = "basic"
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

// Points returns the ranking weight of the plan.
func (p Plan) Points() float64 {
	switch p {
	case PlanEnterprise:
		return 300
	case PlanPremium:
		return 200
	default:
		return 100
	}
}

// Provider is the public business profile of a user. One per user.
// AverageRating, NPSScore, TotalFeedbacks and RankingScore are computed by the server.
type Provider struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	BusinessName  string `json:"business_name"`
	Segment       string `json:"segment"`
	Description   string `json:"description"`
	AvatarURL     string `json:"avatar_url"`
	CoverImageURL string `json:"cover_image_url"`
	City          string `json:"city"`
	State         string `json:"state"`
	Phone         string `json:"phone"`
	WebsiteURL    string `json:"website_url"`
	InstagramURL  string `json:"instagram_url"`
	CNAE          string `json:"cnae"`
	Plan          Plan   `json:"plan"`
	IsVerified    bool   `json:"is_verified"`

	AverageRating  float64 `json:"average_rating"`
	NPSScore       *int    `json:"nps_score,omitempty"`
	TotalFeedbacks int     `json:"total_feedbacks"`
	RankingScore   float64 `json:"ranking_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProviderUpdate is the editable part of a profile. Nil fields are left untouched.
type ProviderUpdate struct {
	UserID        string  `json:"-"`
	BusinessName  *string `json:"business_name,omitempty"`
	Segment       *string `json:"segment,omitempty"`
	Description   *string `json:"description,omitempty"`
	AvatarURL     *string `json:"avatar_url,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	WebsiteURL    *string `json:"website_url,omitempty"`
	InstagramURL  *string `json:"instagram_url,omitempty"`
	CNAE          *string `json:"cnae,omitempty"`
}

// ProviderSort selects the directory ordering.
type ProviderSort string

const (
	ProviderSortNewest  ProviderSort = ""
	ProviderSortRating  ProviderSort = "rating"
	ProviderSortRanking ProviderSort = "ranking"
)

// ProviderFilter narrows the public provider directory.
type ProviderFilter struct {
	Search  string       `json:"search,omitempty"`
	State   string       `json:"state,omitempty"`
	City    string       `json:"city,omitempty"`
	Segment string       `json:"segment,omitempty"`
	SortBy  ProviderSort `json:"sort_by,omitempty"`
}

// ImageKind is the slot a profile image is uploaded to.
type ImageKind string

const (
	ImageAvatar ImageKind = "avatar"
	ImageCover  ImageKind = "cover"
	ImageLogo   ImageKind = "logo"
)

// UploadedFile is the result of an object storage upload.
type UploadedFile struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// RankingScore weights plan, NPS, average rating, verification and volume
// into a 0..100 directory score.
func RankingScore(plan Plan, nps int, averageRating float64, verified bool, totalFeedbacks int) float64 {
	verifiedPoints := 0.0
	if verified {
		verifiedPoints = 100
	}
	score := 0.40*plan.Points()/3 +
		0.25*float64(max(nps, 0)) +
		0.20*averageRating*20 +
		0.10*verifiedPoints +
		0.05*float64(min(totalFeedbacks, 100))
	return math.Round(score*100) / 100
}

func (p Provider) PrimaryKey() string {
	return p.ID
}
