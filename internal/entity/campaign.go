package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CampaignCategory string

const (
	CategoryTechnology CampaignCategory = "Technology"
	CategoryCommunity  CampaignCategory = "Community"
	CategoryArts       CampaignCategory = "Arts"
	CategoryHealth     CampaignCategory = "Health"
	CategoryBusiness   CampaignCategory = "Business"
)

var campaignCategories = []CampaignCategory{
	CategoryTechnology,
	CategoryCommunity,
	CategoryArts,
	CategoryHealth,
	CategoryBusiness,
}

// ParseCampaignCategory matches case-insensitively and returns the canonical
// spelling.
func ParseCampaignCategory(s string) (CampaignCategory, error) {
	for _, c := range campaignCategories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: invalid category %q", ErrValidation, s)
}

type CampaignStatus string

const (
	CampaignPending   CampaignStatus = "pending"
	CampaignApproved  CampaignStatus = "approved"
	CampaignRejected  CampaignStatus = "rejected"
	CampaignCompleted CampaignStatus = "completed"
)

// ParseCampaignStatus accepts "active" as an alias of approved.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch CampaignStatus(strings.ToLower(strings.TrimSpace(s))) {
	case CampaignPending:
		return CampaignPending, nil
	case CampaignApproved, "active":
		return CampaignApproved, nil
	case CampaignRejected:
		return CampaignRejected, nil
	case CampaignCompleted:
		return CampaignCompleted, nil
	}
	return "", fmt.Errorf("%w: invalid campaign status %q", ErrValidation, s)
}

var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignPending:  {CampaignApproved, CampaignRejected},
	CampaignApproved: {CampaignCompleted},
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Rejected and completed are terminal.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	for _, allowed := range campaignTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Campaign struct {
	ID               uint             `json:"id"`
	CreatorID        uint             `json:"creator_id"`
	Title            string           `json:"title"`
	ShortDescription string           `json:"short_description"`
	LongDescription  string           `json:"long_description"`
	Category         CampaignCategory `json:"category"`
	GoalAmount       decimal.Decimal  `json:"goal_amount"`
	RaisedAmount     decimal.Decimal  `json:"raised_amount"`
	Status           CampaignStatus   `json:"status"`
	ImageURL         string           `json:"image_url,omitempty"`
	StartDate        time.Time        `json:"start_date"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type CampaignPage struct {
	Items   []*Campaign `json:"items"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}
