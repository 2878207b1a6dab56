package model

import "time"

type AdminReviewModel struct {
	ID         uint   `gorm:"primaryKey"`
	CampaignID uint   `gorm:"not null;index"`
	AdminID    uint   `gorm:"not null;index"`
	Decision   string `gorm:"type:varchar(20);not null;index"`
	Comments   string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AdminReviewModel) TableName() string {
	return "admin_reviews"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	CampaignID uint   `gorm:"not null;index"`
	UserID     uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	Likes      int64  `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

// CommentLikeModel is the liked-by relation; comments.likes is derived from it.
type CommentLikeModel struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	CommentID uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

func (CommentLikeModel) TableName() string {
	return "comment_likes"
}

type FollowModel struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_follows_user_campaign"`
	CampaignID uint `gorm:"not null;uniqueIndex:idx_follows_user_campaign;index"`
	CreatedAt  time.Time
}

func (FollowModel) TableName() string {
	return "follows"
}
