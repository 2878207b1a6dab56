package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CampaignModel struct {
	ID               uint            `gorm:"primaryKey"`
	CreatorID        uint            `gorm:"not null;index"`
	Title            string          `gorm:"type:varchar(80);not null;index"`
	ShortDescription string          `gorm:"type:varchar(255)"`
	LongDescription  string          `gorm:"type:text"`
	Category         string          `gorm:"type:varchar(20);not null;index"`
	GoalAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RaisedAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Status           string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	ImageURL         string          `gorm:"type:varchar(2083)"`
	StartDate        time.Time       `gorm:"not null"`
	EndDate          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CampaignModel) TableName() string {
	return "campaigns"
}

type CampaignUpdateModel struct {
	ID         uint   `gorm:"primaryKey"`
	CampaignID uint   `gorm:"not null;index"`
	UserID     *uint  `gorm:"index"`
	Title      string `gorm:"type:varchar(80);not null"`
	Content    string `gorm:"type:text;not null"`
	Changes    datatypes.JSONType[[]FieldChangeModel]
	CreatedAt  time.Time
}

func (CampaignUpdateModel) TableName() string {
	return "campaign_updates"
}

// FieldChangeModel is the JSON shape stored in campaign_updates.changes.
type FieldChangeModel struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}
