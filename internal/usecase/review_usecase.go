package usecase

import (
	"context"
	"strings"

	"crowdfund/internal/entity"
	"crowdfund/internal/repo/persistent"
	"crowdfund/pkg/logger"
)

// ReviewPatch changes a review's decision or comments. A decision that is
// present must not be empty.
type ReviewPatch struct {
	Decision *string
	Comments *string
}

// ReviewUseCase records moderation decisions. A review never changes the
// reviewed campaign's status; admins do that through CampaignUseCase.
type ReviewUseCase interface {
	CreateReview(ctx context.Context, adminID, campaignID uint, decision, comments string) (*entity.AdminReview, error)
	GetReview(ctx context.Context, id uint) (*entity.AdminReview, error)
	ListByAdmin(ctx context.Context, adminID uint) ([]*entity.AdminReview, error)
	ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.AdminReview, error)
	ListByDecision(ctx context.Context, decision string) ([]*entity.AdminReview, error)
	UpdateReview(ctx context.Context, id uint, patch ReviewPatch) (*entity.AdminReview, error)
	DeleteReview(ctx context.Context, id uint) error
}

type reviewUseCase struct {
	store  persistent.Store
	logger *logger.Logger
}

func NewReviewUseCase(store persistent.Store, logger *logger.Logger) ReviewUseCase {
	return &reviewUseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *reviewUseCase) CreateReview(ctx context.Context, adminID, campaignID uint, decision, comments string) (*entity.AdminReview, error) {
	parsed, err := entity.ParseReviewDecision(decision)
	if err != nil {
		return nil, err
	}

	review := &entity.AdminReview{
		CampaignID: campaignID,
		AdminID:    adminID,
		Decision:   parsed,
		Comments:   strings.TrimSpace(comments),
	}
	err = uc.store.Transaction(ctx, func(tx persistent.Store) error {
		exists, err := tx.Campaigns().Exists(campaignID)
		if err != nil {
			return err
		}
		if !exists {
			return notFound("campaign")
		}
		return tx.Reviews().Create(review)
	})
	if err != nil {
		return nil, fail(uc.logger, "create admin review", err)
	}

	uc.logger.Info("Admin %d reviewed campaign %d: %s", adminID, campaignID, parsed)
	return review, nil
}

func (uc *reviewUseCase) GetReview(ctx context.Context, id uint) (*entity.AdminReview, error) {
	review, err := uc.store.WithContext(ctx).Reviews().GetByID(id)
	if err != nil {
		return nil, fail(uc.logger, "get admin review", named(err, "admin review"))
	}
	return review, nil
}

func (uc *reviewUseCase) ListByAdmin(ctx context.Context, adminID uint) ([]*entity.AdminReview, error) {
	reviews, err := uc.store.WithContext(ctx).Reviews().ListByAdmin(adminID)
	if err != nil {
		return nil, fail(uc.logger, "list admin reviews", err)
	}
	return reviews, nil
}

func (uc *reviewUseCase) ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.AdminReview, error) {
	reviews, err := uc.store.WithContext(ctx).Reviews().ListByCampaign(campaignID)
	if err != nil {
		return nil, fail(uc.logger, "list admin reviews", err)
	}
	return reviews, nil
}

func (uc *reviewUseCase) ListByDecision(ctx context.Context, decision string) ([]*entity.AdminReview, error) {
	parsed, err := entity.ParseReviewDecision(decision)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.store.WithContext(ctx).Reviews().ListByDecision(parsed)
	if err != nil {
		return nil, fail(uc.logger, "list admin reviews", err)
	}
	return reviews, nil
}

func (uc *reviewUseCase) UpdateReview(ctx context.Context, id uint, patch ReviewPatch) (*entity.AdminReview, error) {
	var decision entity.ReviewDecision
	if patch.Decision != nil {
		parsed, err := entity.ParseReviewDecision(*patch.Decision)
		if err != nil {
			return nil, err
		}
		decision = parsed
	}

	var review *entity.AdminReview
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		var err error
		review, err = tx.Reviews().GetByID(id)
		if err != nil {
			return named(err, "admin review")
		}
		if decision != "" {
			review.Decision = decision
		}
		if patch.Comments != nil {
			review.Comments = strings.TrimSpace(*patch.Comments)
		}
		return tx.Reviews().Update(review)
	})
	if err != nil {
		return nil, fail(uc.logger, "update admin review", err)
	}
	return review, nil
}

func (uc *reviewUseCase) DeleteReview(ctx context.Context, id uint) error {
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		return named(tx.Reviews().Delete(id), "admin review")
	})
	if err != nil {
		return fail(uc.logger, "delete admin review", err)
	}
	return nil
}
