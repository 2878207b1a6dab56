package persistent

import (
	"crowdfund/internal/entity"
	"crowdfund/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id uint) (*entity.Comment, error)
	// GetByIDForUpdate row-locks the comment so concurrent like toggles serialise.
	GetByIDForUpdate(id uint) (*entity.Comment, error)
	ListByUser(userID uint) ([]*entity.Comment, error)
	ListByCampaign(campaignID uint) ([]*entity.Comment, error)
	UpdateContent(id uint, content string) error
	Delete(id uint) error

	IsLiked(userID, commentID uint) (bool, error)
	AddLike(userID, commentID uint) error
	RemoveLike(userID, commentID uint) error
	CountLikes(commentID uint) (int64, error)
	// SyncLikes recomputes comments.likes from comment_likes for one comment.
	SyncLikes(commentID uint) (int64, error)
	// SyncAllLikes does the same for every comment whose projection drifted and
	// returns how many rows were corrected.
	SyncAllLikes() (int64, error)
	TotalLikes() (int64, error)

	Count() (int64, error)
	CountByUser(userID uint) (int64, error)
	CountByCampaign(campaignID uint) (int64, error)
	TopCommenters(limit int) ([]entity.CommenterStat, error)
	TopCommentedCampaigns(limit int) ([]entity.CampaignCommentStat, error)
	AverageLikes() (float64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return translateError(err)
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id uint) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.First(&commentModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) GetByIDForUpdate(id uint) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := forUpdate(r.db).First(&commentModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByUser(userID uint) ([]*entity.Comment, error) {
	return r.find(r.db.Where("user_id = ?", userID))
}

func (r *commentRepository) ListByCampaign(campaignID uint) ([]*entity.Comment, error) {
	return r.find(r.db.Where("campaign_id = ?", campaignID))
}

func (r *commentRepository) find(query *gorm.DB) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := query.Order("id ASC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) UpdateContent(id uint, content string) error {
	result := r.db.Model(&model.CommentModel{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Delete removes the comment together with its likes.
func (r *commentRepository) Delete(id uint) error {
	if err := r.db.Where("comment_id = ?", id).Delete(&model.CommentLikeModel{}).Error; err != nil {
		return err
	}
	result := r.db.Delete(&model.CommentModel{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *commentRepository) IsLiked(userID, commentID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.CommentLikeModel{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	return count > 0, err
}

func (r *commentRepository) AddLike(userID, commentID uint) error {
	like := &model.CommentLikeModel{UserID: userID, CommentID: commentID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

func (r *commentRepository) RemoveLike(userID, commentID uint) error {
	return r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).Delete(&model.CommentLikeModel{}).Error
}

func (r *commentRepository) CountLikes(commentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentLikeModel{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}

func (r *commentRepository) SyncLikes(commentID uint) (int64, error) {
	count, err := r.CountLikes(commentID)
	if err != nil {
		return 0, err
	}
	if err := r.db.Model(&model.CommentModel{}).Where("id = ?", commentID).UpdateColumn("likes", count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *commentRepository) SyncAllLikes() (int64, error) {
	liked := func() *gorm.DB {
		return r.db.Model(&model.CommentLikeModel{}).
			Select("COUNT(*)").
			Where("comment_likes.comment_id = comments.id")
	}

	result := r.db.Model(&model.CommentModel{}).
		Where("likes <> (?)", liked()).
		UpdateColumn("likes", liked())
	return result.RowsAffected, result.Error
}

func (r *commentRepository) TotalLikes() (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentLikeModel{}).Count(&count).Error
	return count, err
}

func (r *commentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentModel{}).Count(&count).Error
	return count, err
}

func (r *commentRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentModel{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *commentRepository) CountByCampaign(campaignID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentModel{}).Where("campaign_id = ?", campaignID).Count(&count).Error
	return count, err
}

func (r *commentRepository) TopCommenters(limit int) ([]entity.CommenterStat, error) {
	var stats []entity.CommenterStat
	err := r.db.Model(&model.CommentModel{}).
		Select("users.username AS username, COUNT(comments.id) AS comment_count").
		Joins("JOIN users ON users.id = comments.user_id").
		Group("users.username").
		Order("comment_count DESC, users.username ASC").
		Limit(limit).
		Scan(&stats).Error
	return stats, err
}

func (r *commentRepository) TopCommentedCampaigns(limit int) ([]entity.CampaignCommentStat, error) {
	var stats []entity.CampaignCommentStat
	err := r.db.Model(&model.CommentModel{}).
		Select("campaigns.title AS title, COUNT(comments.id) AS comment_count").
		Joins("JOIN campaigns ON campaigns.id = comments.campaign_id").
		Group("campaigns.id, campaigns.title").
		Order("comment_count DESC, campaigns.id ASC").
		Limit(limit).
		Scan(&stats).Error
	return stats, err
}

func (r *commentRepository) AverageLikes() (float64, error) {
	var avg float64
	row := r.db.Model(&model.CommentModel{}).Select("COALESCE(AVG(likes), 0)").Row()
	if err := row.Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}
