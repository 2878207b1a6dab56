package entity

import (
	"fmt"
	"strings"
	"time"
)

type ReviewDecision string

const (
	DecisionApproved ReviewDecision = "approved"
	DecisionRejected ReviewDecision = "rejected"
)

func ParseReviewDecision(s string) (ReviewDecision, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return "", fmt.Errorf("%w: decision field cannot be empty", ErrValidation)
	}
	switch d := ReviewDecision(trimmed); d {
	case DecisionApproved, DecisionRejected:
		return d, nil
	}
	return "", fmt.Errorf("%w: invalid decision %q", ErrValidation, s)
}

type AdminReview struct {
	ID         uint           `json:"id"`
	CampaignID uint           `json:"campaign_id"`
	AdminID    uint           `json:"admin_id"`
	Decision   ReviewDecision `json:"decision"`
	Comments   string         `json:"comments,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
