package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"crowdfund/internal/entity"
	"crowdfund/internal/repo/persistent"
	"crowdfund/pkg/logger"
)

const defaultTopLimit = 5

// CommentStats is the comment analytics summary.
type CommentStats struct {
	TotalComments  int64                        `json:"total_comments"`
	TotalLikes     int64                        `json:"total_likes"`
	AverageLikes   float64                      `json:"average_likes"`
	TopCommenters  []entity.CommenterStat       `json:"top_commenters"`
	TopCommentedOn []entity.CampaignCommentStat `json:"top_commented_campaigns"`
}

type CommentUseCase interface {
	CreateComment(ctx context.Context, userID, campaignID uint, content string) (*entity.Comment, error)
	GetComment(ctx context.Context, id uint) (*entity.Comment, error)
	UpdateComment(ctx context.Context, actor Actor, id uint, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, actor Actor, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]*entity.Comment, error)
	ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.Comment, error)

	ToggleLike(ctx context.Context, commentID, userID uint) (*entity.LikeResult, error)
	GetLikes(ctx context.Context, commentID uint) (int64, error)
	ReconcileLikes(ctx context.Context) (int64, error)

	CountComments(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	CountByCampaign(ctx context.Context, campaignID uint) (int64, error)
	TopCommenters(ctx context.Context, limit int) ([]entity.CommenterStat, error)
	TopCommentedCampaigns(ctx context.Context, limit int) ([]entity.CampaignCommentStat, error)
	AverageLikes(ctx context.Context) (float64, error)
	Stats(ctx context.Context, limit int) (*CommentStats, error)
}

type commentUseCase struct {
	store  persistent.Store
	logger *logger.Logger
}

func NewCommentUseCase(store persistent.Store, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *commentUseCase) CreateComment(ctx context.Context, userID, campaignID uint, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validationError("comment content cannot be empty")
	}

	comment := &entity.Comment{
		CampaignID: campaignID,
		UserID:     userID,
		Content:    content,
	}
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		if _, err := tx.Users().GetByID(userID); err != nil {
			return named(err, "user")
		}
		exists, err := tx.Campaigns().Exists(campaignID)
		if err != nil {
			return err
		}
		if !exists {
			return notFound("campaign")
		}
		return tx.Comments().Create(comment)
	})
	if err != nil {
		return nil, fail(uc.logger, "create comment", err)
	}
	return comment, nil
}

func (uc *commentUseCase) GetComment(ctx context.Context, id uint) (*entity.Comment, error) {
	comment, err := uc.store.WithContext(ctx).Comments().GetByID(id)
	if err != nil {
		return nil, fail(uc.logger, "get comment", named(err, "comment"))
	}
	return comment, nil
}

func (uc *commentUseCase) UpdateComment(ctx context.Context, actor Actor, id uint, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validationError("comment content cannot be empty")
	}

	var comment *entity.Comment
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		var err error
		comment, err = tx.Comments().GetByIDForUpdate(id)
		if err != nil {
			return named(err, "comment")
		}
		if err := authorizeAuthor(actor, comment); err != nil {
			return err
		}
		if err := tx.Comments().UpdateContent(id, content); err != nil {
			return err
		}
		comment, err = tx.Comments().GetByID(id)
		return err
	})
	if err != nil {
		return nil, fail(uc.logger, "update comment", err)
	}
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, actor Actor, id uint) error {
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		comment, err := tx.Comments().GetByIDForUpdate(id)
		if err != nil {
			return named(err, "comment")
		}
		if err := authorizeAuthor(actor, comment); err != nil {
			return err
		}
		return tx.Comments().Delete(id)
	})
	if err != nil {
		return fail(uc.logger, "delete comment", err)
	}
	return nil
}

func (uc *commentUseCase) ListByUser(ctx context.Context, userID uint) ([]*entity.Comment, error) {
	comments, err := uc.store.WithContext(ctx).Comments().ListByUser(userID)
	if err != nil {
		return nil, fail(uc.logger, "list comments", err)
	}
	return comments, nil
}

func (uc *commentUseCase) ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.Comment, error) {
	comments, err := uc.store.WithContext(ctx).Comments().ListByCampaign(campaignID)
	if err != nil {
		return nil, fail(uc.logger, "list comments", err)
	}
	return comments, nil
}

// ToggleLike flips the user's like on a comment. The comment row stays locked
// until the like relation and the cached count agree again.
func (uc *commentUseCase) ToggleLike(ctx context.Context, commentID, userID uint) (*entity.LikeResult, error) {
	result := &entity.LikeResult{}
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		if _, err := tx.Users().GetByID(userID); err != nil {
			return named(err, "user")
		}
		if _, err := tx.Comments().GetByIDForUpdate(commentID); err != nil {
			return named(err, "comment")
		}

		liked, err := tx.Comments().IsLiked(userID, commentID)
		if err != nil {
			return err
		}
		if liked {
			err = tx.Comments().RemoveLike(userID, commentID)
		} else {
			err = tx.Comments().AddLike(userID, commentID)
		}
		if err != nil {
			return err
		}

		if _, err := tx.Comments().SyncLikes(commentID); err != nil {
			return err
		}
		comment, err := tx.Comments().GetByID(commentID)
		if err != nil {
			return err
		}

		result.Liked = !liked
		result.Comment = comment
		return nil
	})
	if err != nil {
		return nil, fail(uc.logger, "toggle like", err)
	}
	return result, nil
}

func (uc *commentUseCase) GetLikes(ctx context.Context, commentID uint) (int64, error) {
	comment, err := uc.GetComment(ctx, commentID)
	if err != nil {
		return 0, err
	}
	return comment.Likes, nil
}

// ReconcileLikes rewrites every drifted comments.likes value from the like
// relation and returns the number of comments corrected.
func (uc *commentUseCase) ReconcileLikes(ctx context.Context) (int64, error) {
	var fixed int64
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		var err error
		fixed, err = tx.Comments().SyncAllLikes()
		return err
	})
	if err != nil {
		return 0, fail(uc.logger, "reconcile likes", err)
	}
	if fixed > 0 {
		uc.logger.Warn("Reconciled like counts on %d comments", fixed)
	}
	return fixed, nil
}

func (uc *commentUseCase) CountComments(ctx context.Context) (int64, error) {
	count, err := uc.store.WithContext(ctx).Comments().Count()
	if err != nil {
		return 0, fail(uc.logger, "count comments", err)
	}
	return count, nil
}

func (uc *commentUseCase) CountByUser(ctx context.Context, userID uint) (int64, error) {
	count, err := uc.store.WithContext(ctx).Comments().CountByUser(userID)
	if err != nil {
		return 0, fail(uc.logger, "count comments", err)
	}
	return count, nil
}

func (uc *commentUseCase) CountByCampaign(ctx context.Context, campaignID uint) (int64, error) {
	count, err := uc.store.WithContext(ctx).Comments().CountByCampaign(campaignID)
	if err != nil {
		return 0, fail(uc.logger, "count comments", err)
	}
	return count, nil
}

func (uc *commentUseCase) TopCommenters(ctx context.Context, limit int) ([]entity.CommenterStat, error) {
	stats, err := uc.store.WithContext(ctx).Comments().TopCommenters(topLimit(limit))
	if err != nil {
		return nil, fail(uc.logger, "rank commenters", err)
	}
	return stats, nil
}

func (uc *commentUseCase) TopCommentedCampaigns(ctx context.Context, limit int) ([]entity.CampaignCommentStat, error) {
	stats, err := uc.store.WithContext(ctx).Comments().TopCommentedCampaigns(topLimit(limit))
	if err != nil {
		return nil, fail(uc.logger, "rank campaigns", err)
	}
	return stats, nil
}

// AverageLikes is rounded to two decimal places.
func (uc *commentUseCase) AverageLikes(ctx context.Context) (float64, error) {
	avg, err := uc.store.WithContext(ctx).Comments().AverageLikes()
	if err != nil {
		return 0, fail(uc.logger, "average likes", err)
	}
	return math.Round(avg*100) / 100, nil
}

func (uc *commentUseCase) Stats(ctx context.Context, limit int) (*CommentStats, error) {
	stats := &CommentStats{}
	var err error
	if stats.TotalComments, err = uc.CountComments(ctx); err != nil {
		return nil, err
	}
	if stats.TotalLikes, err = uc.store.WithContext(ctx).Comments().TotalLikes(); err != nil {
		return nil, fail(uc.logger, "count likes", err)
	}
	if stats.AverageLikes, err = uc.AverageLikes(ctx); err != nil {
		return nil, err
	}
	if stats.TopCommenters, err = uc.TopCommenters(ctx, limit); err != nil {
		return nil, err
	}
	if stats.TopCommentedOn, err = uc.TopCommentedCampaigns(ctx, limit); err != nil {
		return nil, err
	}
	return stats, nil
}

func topLimit(limit int) int {
	if limit < 1 {
		return defaultTopLimit
	}
	return limit
}

func authorizeAuthor(actor Actor, comment *entity.Comment) error {
	if actor.IsAdmin() || actor.UserID == comment.UserID {
		return nil
	}
	return fmt.Errorf("%w: only the author can modify comment %d", entity.ErrForbidden, comment.ID)
}
