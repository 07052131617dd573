package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignSettings represents the fundraising goal configuration. At most one
// row is active at a time; reads always select the active one.
type CampaignSettings struct {
	ID            string          `db:"id" json:"id"`
	TargetAmount  decimal.Decimal `db:"target_amount" json:"target_amount"`
	CampaignTitle string          `db:"campaign_title" json:"campaign_title"`
	EndDate       *time.Time      `db:"end_date" json:"end_date,omitempty"`
	IsActive      bool            `db:"is_active" json:"is_active"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// CampaignProgress is derived from the active campaign and current totals.
type CampaignProgress struct {
	ProgressPercentage float64         `json:"progress_percentage"`
	RemainingAmount    decimal.Decimal `json:"remaining_amount"`
}

// Countdown holds the non-negative remaining duration until the campaign end
// date, truncated at each unit boundary.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}
