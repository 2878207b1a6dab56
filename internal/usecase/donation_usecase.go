package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crowdfund/internal/entity"
	"crowdfund/internal/repo/persistent"
	"crowdfund/pkg/logger"

	"github.com/shopspring/decimal"
)

type CreateDonationInput struct {
	DonorID    uint
	CampaignID uint
	Amount     decimal.Decimal
	Status     string
	Message    string
}

type DonationUseCase interface {
	CreateDonation(ctx context.Context, input CreateDonationInput) (*entity.Donation, error)
	GetDonation(ctx context.Context, id uint) (*entity.Donation, error)
	ListByUser(ctx context.Context, userID uint) ([]*entity.Donation, error)
	ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.Donation, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*entity.Donation, error)
	CancelDonation(ctx context.Context, actor Actor, id uint) (*entity.Donation, error)
}

type donationUseCase struct {
	store  persistent.Store
	logger *logger.Logger
	now    func() time.Time
}

func NewDonationUseCase(store persistent.Store, logger *logger.Logger) DonationUseCase {
	return &donationUseCase{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *donationUseCase) CreateDonation(ctx context.Context, input CreateDonationInput) (*entity.Donation, error) {
	if !input.Amount.IsPositive() {
		return nil, validationError("amount must be greater than 0")
	}
	status, err := entity.ParseDonationStatus(input.Status)
	if err != nil {
		return nil, err
	}

	donation := &entity.Donation{
		CampaignID:   input.CampaignID,
		DonorID:      input.DonorID,
		Amount:       input.Amount,
		Status:       status,
		Message:      strings.TrimSpace(input.Message),
		DonationDate: uc.now().UTC(),
	}

	err = uc.store.Transaction(ctx, func(tx persistent.Store) error {
		if _, err := tx.Users().GetByID(input.DonorID); err != nil {
			return named(err, "donor")
		}
		exists, err := tx.Campaigns().Exists(input.CampaignID)
		if err != nil {
			return err
		}
		if !exists {
			return notFound("campaign")
		}
		return tx.Donations().Create(donation)
	})
	if err != nil {
		return nil, fail(uc.logger, "create donation", err)
	}

	uc.logger.Info("Donation %d of %s to campaign %d by user %d", donation.ID, donation.Amount.StringFixed(2), donation.CampaignID, donation.DonorID)
	return donation, nil
}

func (uc *donationUseCase) GetDonation(ctx context.Context, id uint) (*entity.Donation, error) {
	donation, err := uc.store.WithContext(ctx).Donations().GetByID(id)
	if err != nil {
		return nil, fail(uc.logger, "get donation", named(err, "donation"))
	}
	return donation, nil
}

func (uc *donationUseCase) ListByUser(ctx context.Context, userID uint) ([]*entity.Donation, error) {
	donations, err := uc.store.WithContext(ctx).Donations().ListByDonor(userID)
	if err != nil {
		return nil, fail(uc.logger, "list donations", err)
	}
	if len(donations) == 0 {
		return nil, fmt.Errorf("%w: no donations found for user %d", entity.ErrNotFound, userID)
	}
	return donations, nil
}

func (uc *donationUseCase) ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.Donation, error) {
	donations, err := uc.store.WithContext(ctx).Donations().ListByCampaign(campaignID)
	if err != nil {
		return nil, fail(uc.logger, "list donations", err)
	}
	if len(donations) == 0 {
		return nil, fmt.Errorf("%w: no donations found for campaign %d", entity.ErrNotFound, campaignID)
	}
	return donations, nil
}

// UpdateStatus sets any status from any status.
func (uc *donationUseCase) UpdateStatus(ctx context.Context, id uint, status string) (*entity.Donation, error) {
	if strings.TrimSpace(status) == "" {
		return nil, validationError("status is required")
	}
	next, err := entity.ParseDonationStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.setStatus(ctx, "update donation status", id, func(*entity.Donation) error { return nil }, next)
}

// CancelDonation is open to the donor and to admins.
func (uc *donationUseCase) CancelDonation(ctx context.Context, actor Actor, id uint) (*entity.Donation, error) {
	authorize := func(d *entity.Donation) error {
		if actor.IsAdmin() || actor.UserID == d.DonorID {
			return nil
		}
		return fmt.Errorf("%w: only the donor can cancel donation %d", entity.ErrForbidden, d.ID)
	}
	return uc.setStatus(ctx, "cancel donation", id, authorize, entity.DonationCancelled)
}

func (uc *donationUseCase) setStatus(
	ctx context.Context,
	op string,
	id uint,
	check func(*entity.Donation) error,
	status entity.DonationStatus,
) (*entity.Donation, error) {
	var donation *entity.Donation
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		var err error
		donation, err = tx.Donations().GetByIDForUpdate(id)
		if err != nil {
			return named(err, "donation")
		}
		if err := check(donation); err != nil {
			return err
		}
		if err := tx.Donations().UpdateStatus(id, status); err != nil {
			return err
		}
		donation, err = tx.Donations().GetByID(id)
		return err
	})
	if err != nil {
		return nil, fail(uc.logger, op, err)
	}
	return donation, nil
}
