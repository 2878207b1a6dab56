package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DonationModel struct {
	ID           uint            `gorm:"primaryKey"`
	CampaignID   uint            `gorm:"not null;index"`
	DonorID      uint            `gorm:"not null;index"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Message      string          `gorm:"type:text"`
	DonationDate time.Time       `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (DonationModel) TableName() string {
	return "donations"
}

type PaymentModel struct {
	ID              uint            `gorm:"primaryKey"`
	DonationID      uint            `gorm:"not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Method          string          `gorm:"type:varchar(50);not null;index"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	TransactionRef  string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	TransactionDate time.Time       `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}
