package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentPending:
		return PaymentPending, nil
	case PaymentSuccessful:
		return PaymentSuccessful, nil
	case PaymentFailed:
		return PaymentFailed, nil
	case PaymentRefunded:
		return PaymentRefunded, nil
	}
	return "", fmt.Errorf("%w: invalid payment status %q, must be one of pending, successful, failed, refunded", ErrValidation, s)
}

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodPayPal       PaymentMethod = "paypal"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// ParsePaymentMethod is case-insensitive and stores methods lower-case.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("%w: payment method cannot be empty", ErrValidation)
	}
	switch m := PaymentMethod(strings.ToLower(trimmed)); m {
	case MethodCreditCard, MethodDebitCard, MethodPayPal, MethodBankTransfer:
		return m, nil
	}
	return "", fmt.Errorf("%w: invalid payment method %q", ErrValidation, s)
}

type Payment struct {
	ID              uint            `json:"id"`
	DonationID      uint            `json:"donation_id"`
	Amount          decimal.Decimal `json:"amount"`
	Method          PaymentMethod   `json:"method"`
	Status          PaymentStatus   `json:"status"`
	TransactionRef  string          `json:"transaction_ref"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
