package models

import "time"

// FeedbackStatus is the owner-side workflow state of a feedback.
type FeedbackStatus string

const (
	FeedbackPending   FeedbackStatus = "pending"
	FeedbackResponded FeedbackStatus = "responded"
	FeedbackArchived  FeedbackStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackPending, FeedbackResponded, FeedbackArchived:
		return true
	}
	return false
}

// ActiveFeedbackStatuses is the status set of the default feedback view.
var ActiveFeedbackStatuses = []FeedbackStatus{FeedbackPending, FeedbackResponded}

// ArchivedFeedbackStatuses is the status set of the archived feedback view.
var ArchivedFeedbackStatuses = []FeedbackStatus{FeedbackArchived}

// Sentiment is the label assigned by the sentiment analysis job.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// FeedbackSourceQRCode marks feedbacks submitted through the public QR form.
const FeedbackSourceQRCode = "qr_code"

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a single customer rating with optional comment and location.
type Feedback struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	QRCodeID      *string        `json:"qr_code_id,omitempty"`
	Rating        int            `json:"rating"`
	Comment       string         `json:"comment"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	Location      string         `json:"location,omitempty"`
	Latitude      *float64       `json:"latitude,omitempty"`
	Longitude     *float64       `json:"longitude,omitempty"`
	Status        FeedbackStatus `json:"status"`
	Source        string         `json:"source"`

	Sentiment      *Sentiment `json:"sentiment,omitempty"`
	SentimentScore *float64   `json:"sentiment_score,omitempty"`
	Topics         []string   `json:"topics,omitempty"`
	AnalyzedAt     *time.Time `json:"analyzed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// PrimaryKey implements the realtime list key contract.
func (f Feedback) PrimaryKey() string {
	return f.ID
}

// FeedbackFilter narrows the owner's feedback list.
type FeedbackFilter struct {
	UserID    string           `json:"-"`
	Statuses  []FeedbackStatus `json:"statuses,omitempty"`
	StartDate *time.Time       `json:"start_date,omitempty"`
	EndDate   *time.Time       `json:"end_date,omitempty"`
	Limit     uint64           `json:"limit,omitempty"`
}

// FeedbackList is a page of feedbacks with the exact total matching the filter.
type FeedbackList struct {
	Feedbacks  []Feedback `json:"feedbacks"`
	TotalCount int        `json:"total_count"`
}

// FeedbackStatusUpdate is the body of the status-change request.
type FeedbackStatusUpdate struct {
	Status FeedbackStatus `json:"status"`
}

// PublicFeedback is what an anonymous customer submits from the QR form.
type PublicFeedback struct {
	Rating        int      `json:"rating"`
	Comment       string   `json:"comment"`
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email"`
	Location      string   `json:"location"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// SentimentResult is the normalized outcome of sentiment analysis.
type SentimentResult struct {
	Sentiment Sentiment `json:"sentiment"`
	Score     float64   `json:"sentiment_score"`
	Topics    []string  `json:"topics"`
}

// FeedbackMapPoint is a geolocated feedback marker.
type FeedbackMapPoint struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
