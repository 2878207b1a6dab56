package usecase

import (
	"context"
	"fmt"

	"crowdfund/internal/entity"
	"crowdfund/internal/repo/persistent"
	"crowdfund/pkg/logger"
)

type FollowUseCase interface {
	Follow(ctx context.Context, userID, campaignID uint) (*entity.Follow, error)
	Unfollow(ctx context.Context, userID, campaignID uint) error
	GetFollow(ctx context.Context, id uint) (*entity.Follow, error)
	ListFollows(ctx context.Context) ([]*entity.Follow, error)
	ListByUser(ctx context.Context, userID uint) ([]*entity.Follow, error)
	ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.Follow, error)
	IsFollowing(ctx context.Context, userID, campaignID uint) (bool, error)
	CountFollowers(ctx context.Context, campaignID uint) (int64, error)
	CountFollowed(ctx context.Context, userID uint) (int64, error)
	DeleteFollow(ctx context.Context, id uint) error
}

type followUseCase struct {
	store  persistent.Store
	logger *logger.Logger
}

func NewFollowUseCase(store persistent.Store, logger *logger.Logger) FollowUseCase {
	return &followUseCase{
		store:  store,
		logger: logger,
	}
}

// Follow rejects a second follow of the same campaign with entity.ErrConflict.
// The unique (user_id, campaign_id) index catches a concurrent duplicate.
func (uc *followUseCase) Follow(ctx context.Context, userID, campaignID uint) (*entity.Follow, error) {
	follow := &entity.Follow{UserID: userID, CampaignID: campaignID}
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		exists, err := tx.Campaigns().Exists(campaignID)
		if err != nil {
			return err
		}
		if !exists {
			return notFound("campaign")
		}

		following, err := tx.Follows().Exists(userID, campaignID)
		if err != nil {
			return err
		}
		if following {
			return fmt.Errorf("%w: user already follows this campaign", entity.ErrConflict)
		}
		return tx.Follows().Create(follow)
	})
	if err != nil {
		return nil, fail(uc.logger, "follow campaign", err)
	}
	return follow, nil
}

func (uc *followUseCase) Unfollow(ctx context.Context, userID, campaignID uint) error {
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		return named(tx.Follows().DeleteByPair(userID, campaignID), "follow")
	})
	if err != nil {
		return fail(uc.logger, "unfollow campaign", err)
	}
	return nil
}

func (uc *followUseCase) GetFollow(ctx context.Context, id uint) (*entity.Follow, error) {
	follow, err := uc.store.WithContext(ctx).Follows().GetByID(id)
	if err != nil {
		return nil, fail(uc.logger, "get follow", named(err, "follow"))
	}
	return follow, nil
}

func (uc *followUseCase) ListFollows(ctx context.Context) ([]*entity.Follow, error) {
	follows, err := uc.store.WithContext(ctx).Follows().List()
	return nonEmptyFollows(uc.logger, follows, err, "no follow records found")
}

func (uc *followUseCase) ListByUser(ctx context.Context, userID uint) ([]*entity.Follow, error) {
	follows, err := uc.store.WithContext(ctx).Follows().ListByUser(userID)
	return nonEmptyFollows(uc.logger, follows, err, fmt.Sprintf("no campaigns followed by user %d", userID))
}

func (uc *followUseCase) ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.Follow, error) {
	follows, err := uc.store.WithContext(ctx).Follows().ListByCampaign(campaignID)
	return nonEmptyFollows(uc.logger, follows, err, fmt.Sprintf("no followers found for campaign %d", campaignID))
}

func nonEmptyFollows(log *logger.Logger, follows []*entity.Follow, err error, empty string) ([]*entity.Follow, error) {
	if err != nil {
		return nil, fail(log, "list follows", err)
	}
	if len(follows) == 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrNotFound, empty)
	}
	return follows, nil
}

func (uc *followUseCase) IsFollowing(ctx context.Context, userID, campaignID uint) (bool, error) {
	following, err := uc.store.WithContext(ctx).Follows().Exists(userID, campaignID)
	if err != nil {
		return false, fail(uc.logger, "check follow", err)
	}
	return following, nil
}

func (uc *followUseCase) CountFollowers(ctx context.Context, campaignID uint) (int64, error) {
	count, err := uc.store.WithContext(ctx).Follows().CountByCampaign(campaignID)
	if err != nil {
		return 0, fail(uc.logger, "count followers", err)
	}
	return count, nil
}

func (uc *followUseCase) CountFollowed(ctx context.Context, userID uint) (int64, error) {
	count, err := uc.store.WithContext(ctx).Follows().CountByUser(userID)
	if err != nil {
		return 0, fail(uc.logger, "count followed campaigns", err)
	}
	return count, nil
}

func (uc *followUseCase) DeleteFollow(ctx context.Context, id uint) error {
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		return named(tx.Follows().Delete(id), "follow")
	})
	if err != nil {
		return fail(uc.logger, "delete follow", err)
	}
	return nil
}
