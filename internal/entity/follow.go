package entity

import "time"

type Follow struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	CampaignID uint      `json:"campaign_id"`
	CreatedAt  time.Time `json:"created_at"`
}
