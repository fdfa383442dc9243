package models

// ContactPriceID is the pseudo price of the enterprise tier, sold through sales contact.
const ContactPriceID = "contact"

// BillingPlan is a purchasable subscription tier.
type BillingPlan struct {
	Name           string   `json:"name"`
	MonthlyPrice   float64  `json:"monthly_price"`
	AnnualPrice    float64  `json:"annual_price"`
	MonthlyPriceID string   `json:"monthly_price_id"`
	AnnualPriceID  string   `json:"annual_price_id"`
	Features       []string `json:"features"`
}

// CheckoutRequest asks for a hosted checkout session.
type CheckoutRequest struct {
	PriceID string `json:"price_id"`

	UserID    string `json:"-"`
	UserEmail string `json:"-"`
}

// CheckoutSession is the hosted checkout handle returned to the client.
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url,omitempty"`
}

// PriceID returns the annual or monthly price id of the plan.
func (p BillingPlan) PriceID(annual bool) string {
	if annual {
		return p.AnnualPriceID
	}
	return p.MonthlyPriceID
}
