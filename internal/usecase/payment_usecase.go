package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crowdfund/internal/entity"
	"crowdfund/internal/repo/persistent"
	"crowdfund/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentInput struct {
	DonationID uint
	Amount     decimal.Decimal
	Method     string
	Status     string
}

type PaymentUseCase interface {
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*entity.Payment, error)
	GetPayment(ctx context.Context, id uint) (*entity.Payment, error)
	ListPayments(ctx context.Context) ([]*entity.Payment, error)
	ListByDonation(ctx context.Context, donationID uint) ([]*entity.Payment, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*entity.Payment, error)
	UpdateMethod(ctx context.Context, id uint, method string) (*entity.Payment, error)
	DeletePayment(ctx context.Context, id uint) error
	CountPayments(ctx context.Context) (int64, error)
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
	FilterByStatus(ctx context.Context, status string) ([]*entity.Payment, error)
	FilterByMethod(ctx context.Context, method string) ([]*entity.Payment, error)
}

type paymentUseCase struct {
	store  persistent.Store
	logger *logger.Logger
	now    func() time.Time
}

func NewPaymentUseCase(store persistent.Store, logger *logger.Logger) PaymentUseCase {
	return &paymentUseCase{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *paymentUseCase) CreatePayment(ctx context.Context, input CreatePaymentInput) (*entity.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, validationError("amount must be greater than 0")
	}
	method, err := entity.ParsePaymentMethod(input.Method)
	if err != nil {
		return nil, err
	}
	status, err := entity.ParsePaymentStatus(input.Status)
	if err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		DonationID:      input.DonationID,
		Amount:          input.Amount,
		Method:          method,
		Status:          status,
		TransactionRef:  uuid.New().String(),
		TransactionDate: uc.now().UTC(),
	}

	err = uc.store.Transaction(ctx, func(tx persistent.Store) error {
		exists, err := tx.Donations().Exists(input.DonationID)
		if err != nil {
			return err
		}
		if !exists {
			return notFound("donation")
		}
		return tx.Payments().Create(payment)
	})
	if err != nil {
		return nil, fail(uc.logger, "create payment", err)
	}

	uc.logger.Info("Payment %d (%s) recorded for donation %d", payment.ID, payment.TransactionRef, payment.DonationID)
	return payment, nil
}

func (uc *paymentUseCase) GetPayment(ctx context.Context, id uint) (*entity.Payment, error) {
	payment, err := uc.store.WithContext(ctx).Payments().GetByID(id)
	if err != nil {
		return nil, fail(uc.logger, "get payment", named(err, "payment"))
	}
	return payment, nil
}

func (uc *paymentUseCase) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := uc.store.WithContext(ctx).Payments().List()
	return nonEmptyPayments(uc.logger, payments, err, "no payments found")
}

func (uc *paymentUseCase) ListByDonation(ctx context.Context, donationID uint) ([]*entity.Payment, error) {
	payments, err := uc.store.WithContext(ctx).Payments().ListByDonation(donationID)
	return nonEmptyPayments(uc.logger, payments, err, fmt.Sprintf("no payments found for donation %d", donationID))
}

func (uc *paymentUseCase) FilterByStatus(ctx context.Context, status string) ([]*entity.Payment, error) {
	parsed, err := entity.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}
	payments, err := uc.store.WithContext(ctx).Payments().ListByStatus(parsed)
	return nonEmptyPayments(uc.logger, payments, err, fmt.Sprintf("no payments found with status %s", parsed))
}

// FilterByMethod matches the stored method case-insensitively.
func (uc *paymentUseCase) FilterByMethod(ctx context.Context, method string) ([]*entity.Payment, error) {
	if strings.TrimSpace(method) == "" {
		return nil, validationError("payment method cannot be empty")
	}
	payments, err := uc.store.WithContext(ctx).Payments().ListByMethod(method)
	return nonEmptyPayments(uc.logger, payments, err, fmt.Sprintf("no payments found using method %s", method))
}

func nonEmptyPayments(log *logger.Logger, payments []*entity.Payment, err error, empty string) ([]*entity.Payment, error) {
	if err != nil {
		return nil, fail(log, "list payments", err)
	}
	if len(payments) == 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrNotFound, empty)
	}
	return payments, nil
}

func (uc *paymentUseCase) UpdateStatus(ctx context.Context, id uint, status string) (*entity.Payment, error) {
	next, err := entity.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.mutate(ctx, "update payment status", id, func(p *entity.Payment) {
		p.Status = next
	})
}

func (uc *paymentUseCase) UpdateMethod(ctx context.Context, id uint, method string) (*entity.Payment, error) {
	next, err := entity.ParsePaymentMethod(method)
	if err != nil {
		return nil, err
	}
	return uc.mutate(ctx, "update payment method", id, func(p *entity.Payment) {
		p.Method = next
	})
}

func (uc *paymentUseCase) mutate(ctx context.Context, op string, id uint, apply func(*entity.Payment)) (*entity.Payment, error) {
	var payment *entity.Payment
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		var err error
		payment, err = tx.Payments().GetByIDForUpdate(id)
		if err != nil {
			return named(err, "payment")
		}
		apply(payment)
		return tx.Payments().Update(payment)
	})
	if err != nil {
		return nil, fail(uc.logger, op, err)
	}
	return payment, nil
}

func (uc *paymentUseCase) DeletePayment(ctx context.Context, id uint) error {
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		return named(tx.Payments().Delete(id), "payment")
	})
	if err != nil {
		return fail(uc.logger, "delete payment", err)
	}
	return nil
}

func (uc *paymentUseCase) CountPayments(ctx context.Context) (int64, error) {
	count, err := uc.store.WithContext(ctx).Payments().Count()
	if err != nil {
		return 0, fail(uc.logger, "count payments", err)
	}
	return count, nil
}

func (uc *paymentUseCase) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	total, err := uc.store.WithContext(ctx).Payments().SumAmount()
	if err != nil {
		return decimal.Zero, fail(uc.logger, "sum payments", err)
	}
	return total, nil
}
