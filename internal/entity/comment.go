package entity

import "time"

type Comment struct {
	ID         uint      `json:"id"`
	CampaignID uint      `json:"campaign_id"`
	UserID     uint      `json:"user_id"`
	Content    string    `json:"content"`
	Likes      int64     `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type LikeResult struct {
	Liked   bool     `json:"liked"`
	Comment *Comment `json:"comment"`
}

type CommenterStat struct {
	Username     string `json:"username"`
	CommentCount int64  `json:"comment_count"`
}

type CampaignCommentStat struct {
	Title        string `json:"title"`
	CommentCount int64  `json:"comment_count"`
}
