package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DonationStatus string

const (
	DonationPending    DonationStatus = "pending"
	DonationSuccessful DonationStatus = "successful"
	DonationFailed     DonationStatus = "failed"
	DonationRefunded   DonationStatus = "refunded"
	DonationCancelled  DonationStatus = "cancelled"
)

// ParseDonationStatus treats an empty string as pending.
func ParseDonationStatus(s string) (DonationStatus, error) {
	switch DonationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "", DonationPending:
		return DonationPending, nil
	case DonationSuccessful:
		return DonationSuccessful, nil
	case DonationFailed:
		return DonationFailed, nil
	case DonationRefunded:
		return DonationRefunded, nil
	case DonationCancelled:
		return DonationCancelled, nil
	}
	return "", fmt.Errorf("%w: invalid donation status %q", ErrValidation, s)
}

type Donation struct {
	ID           uint            `json:"id"`
	CampaignID   uint            `json:"campaign_id"`
	DonorID      uint            `json:"donor_id"`
	Amount       decimal.Decimal `json:"amount"`
	Status       DonationStatus  `json:"status"`
	Message      string          `json:"message,omitempty"`
	DonationDate time.Time       `json:"donation_date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
