package model

import "gorm.io/gorm"

// All lists every table model in dependency order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&CampaignModel{},
		&CampaignUpdateModel{},
		&DonationModel{},
		&PaymentModel{},
		&AdminReviewModel{},
		&CommentModel{},
		&CommentLikeModel{},
		&FollowModel{},
	}
}

// AutoMigrate is used in development and tests; production schemas come from
// the goose migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
