package entity

import "time"

// FieldChange is one old/new pair recorded when a campaign field changes.
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

type CampaignUpdate struct {
	ID         uint          `json:"id"`
	CampaignID uint          `json:"campaign_id"`
	UserID     *uint         `json:"user_id,omitempty"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	Changes    []FieldChange `json:"changes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
