package persistent

import (
	"crowdfund/internal/entity"
	"crowdfund/internal/model"

	"gorm.io/gorm"
)

type AdminReviewRepository interface {
	Create(review *entity.AdminReview) error
	GetByID(id uint) (*entity.AdminReview, error)
	ListByAdmin(adminID uint) ([]*entity.AdminReview, error)
	ListByCampaign(campaignID uint) ([]*entity.AdminReview, error)
	ListByDecision(decision entity.ReviewDecision) ([]*entity.AdminReview, error)
	Update(review *entity.AdminReview) error
	Delete(id uint) error
}

type adminReviewRepository struct {
	db *gorm.DB
}

func (r *adminReviewRepository) Create(review *entity.AdminReview) error {
	reviewModel := ToAdminReviewModel(review)
	if err := r.db.Create(reviewModel).Error; err != nil {
		return translateError(err)
	}
	*review = *ToAdminReviewEntity(reviewModel)
	return nil
}

func (r *adminReviewRepository) GetByID(id uint) (*entity.AdminReview, error) {
	var reviewModel model.AdminReviewModel
	if err := r.db.First(&reviewModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToAdminReviewEntity(&reviewModel), nil
}

func (r *adminReviewRepository) ListByAdmin(adminID uint) ([]*entity.AdminReview, error) {
	return r.find(r.db.Where("admin_id = ?", adminID))
}

func (r *adminReviewRepository) ListByCampaign(campaignID uint) ([]*entity.AdminReview, error) {
	return r.find(r.db.Where("campaign_id = ?", campaignID))
}

func (r *adminReviewRepository) ListByDecision(decision entity.ReviewDecision) ([]*entity.AdminReview, error) {
	return r.find(r.db.Where("decision = ?", string(decision)))
}

func (r *adminReviewRepository) find(query *gorm.DB) ([]*entity.AdminReview, error) {
	var reviewModels []model.AdminReviewModel
	if err := query.Order("id ASC").Find(&reviewModels).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entity.AdminReview, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = ToAdminReviewEntity(&reviewModels[i])
	}
	return reviews, nil
}

func (r *adminReviewRepository) Update(review *entity.AdminReview) error {
	reviewModel := ToAdminReviewModel(review)
	if err := r.db.Save(reviewModel).Error; err != nil {
		return translateError(err)
	}
	*review = *ToAdminReviewEntity(reviewModel)
	return nil
}

func (r *adminReviewRepository) Delete(id uint) error {
	result := r.db.Delete(&model.AdminReviewModel{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

type FollowRepository interface {
	Create(follow *entity.Follow) error
	GetByID(id uint) (*entity.Follow, error)
	GetByPair(userID, campaignID uint) (*entity.Follow, error)
	Exists(userID, campaignID uint) (bool, error)
	List() ([]*entity.Follow, error)
	ListByUser(userID uint) ([]*entity.Follow, error)
	ListByCampaign(campaignID uint) ([]*entity.Follow, error)
	CountByCampaign(campaignID uint) (int64, error)
	CountByUser(userID uint) (int64, error)
	Delete(id uint) error
	DeleteByPair(userID, campaignID uint) error
}

type followRepository struct {
	db *gorm.DB
}

func (r *followRepository) Create(follow *entity.Follow) error {
	followModel := ToFollowModel(follow)
	if err := r.db.Create(followModel).Error; err != nil {
		return translateError(err)
	}
	*follow = *ToFollowEntity(followModel)
	return nil
}

func (r *followRepository) GetByID(id uint) (*entity.Follow, error) {
	var followModel model.FollowModel
	if err := r.db.First(&followModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToFollowEntity(&followModel), nil
}

func (r *followRepository) GetByPair(userID, campaignID uint) (*entity.Follow, error) {
	var followModel model.FollowModel
	if err := r.db.Where("user_id = ? AND campaign_id = ?", userID, campaignID).First(&followModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToFollowEntity(&followModel), nil
}

func (r *followRepository) Exists(userID, campaignID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).
		Where("user_id = ? AND campaign_id = ?", userID, campaignID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) List() ([]*entity.Follow, error) {
	return r.find(r.db)
}

func (r *followRepository) ListByUser(userID uint) ([]*entity.Follow, error) {
	return r.find(r.db.Where("user_id = ?", userID))
}

func (r *followRepository) ListByCampaign(campaignID uint) ([]*entity.Follow, error) {
	return r.find(r.db.Where("campaign_id = ?", campaignID))
}

func (r *followRepository) find(query *gorm.DB) ([]*entity.Follow, error) {
	var followModels []model.FollowModel
	if err := query.Order("id ASC").Find(&followModels).Error; err != nil {
		return nil, err
	}

	follows := make([]*entity.Follow, len(followModels))
	for i := range followModels {
		follows[i] = ToFollowEntity(&followModels[i])
	}
	return follows, nil
}

func (r *followRepository) CountByCampaign(campaignID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).Where("campaign_id = ?", campaignID).Count(&count).Error
	return count, err
}

func (r *followRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) Delete(id uint) error {
	result := r.db.Delete(&model.FollowModel{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *followRepository) DeleteByPair(userID, campaignID uint) error {
	result := r.db.Where("user_id = ? AND campaign_id = ?", userID, campaignID).Delete(&model.FollowModel{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
