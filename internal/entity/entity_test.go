package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to CampaignStatus
		want     bool
	}{
		{CampaignPending, CampaignApproved, true},
		{CampaignPending, CampaignRejected, true},
		{CampaignApproved, CampaignCompleted, true},
		{CampaignPending, CampaignCompleted, false},
		{CampaignApproved, CampaignRejected, false},
		{CampaignApproved, CampaignPending, false},
		{CampaignRejected, CampaignApproved, false},
		{CampaignRejected, CampaignPending, false},
		{CampaignCompleted, CampaignApproved, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestParseCampaignStatus(t *testing.T) {
	s, err := ParseCampaignStatus("active")
	assert.NoError(t, err)
	assert.Equal(t, CampaignApproved, s)

	s, err = ParseCampaignStatus(" Completed ")
	assert.NoError(t, err)
	assert.Equal(t, CampaignCompleted, s)

	_, err = ParseCampaignStatus("archived")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseCampaignCategory(t *testing.T) {
	c, err := ParseCampaignCategory("technology")
	assert.NoError(t, err)
	assert.Equal(t, CategoryTechnology, c)

	_, err = ParseCampaignCategory("Gaming")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseDonationStatus(t *testing.T) {
	s, err := ParseDonationStatus("")
	assert.NoError(t, err)
	assert.Equal(t, DonationPending, s)

	s, err = ParseDonationStatus("CANCELLED")
	assert.NoError(t, err)
	assert.Equal(t, DonationCancelled, s)

	_, err = ParseDonationStatus("lost")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("PayPal")
	assert.NoError(t, err)
	assert.Equal(t, MethodPayPal, m)

	_, err = ParsePaymentMethod("  ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParsePaymentMethod("cash")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParsePaymentStatus(t *testing.T) {
	s, err := ParsePaymentStatus("successful")
	assert.NoError(t, err)
	assert.Equal(t, PaymentSuccessful, s)

	_, err = ParsePaymentStatus("cancelled")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseReviewDecision(t *testing.T) {
	d, err := ParseReviewDecision("Rejected")
	assert.NoError(t, err)
	assert.Equal(t, DecisionRejected, d)

	_, err = ParseReviewDecision("")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseReviewDecision("maybe")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseUserRole(t *testing.T) {
	r, err := ParseUserRole("ADMIN")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseUserRole("moderator")
	assert.ErrorIs(t, err, ErrValidation)
}
