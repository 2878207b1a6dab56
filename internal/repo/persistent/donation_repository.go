package persistent

import (
	"strings"

	"crowdfund/internal/entity"
	"crowdfund/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DonationRepository interface {
	Create(donation *entity.Donation) error
	GetByID(id uint) (*entity.Donation, error)
	GetByIDForUpdate(id uint) (*entity.Donation, error)
	Exists(id uint) (bool, error)
	ListByDonor(donorID uint) ([]*entity.Donation, error)
	ListByCampaign(campaignID uint) ([]*entity.Donation, error)
	UpdateStatus(id uint, status entity.DonationStatus) error
}

type donationRepository struct {
	db *gorm.DB
}

func (r *donationRepository) Create(donation *entity.Donation) error {
	donationModel := ToDonationModel(donation)
	if err := r.db.Create(donationModel).Error; err != nil {
		return translateError(err)
	}
	*donation = *ToDonationEntity(donationModel)
	return nil
}

func (r *donationRepository) GetByID(id uint) (*entity.Donation, error) {
	var donationModel model.DonationModel
	if err := r.db.First(&donationModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToDonationEntity(&donationModel), nil
}

func (r *donationRepository) GetByIDForUpdate(id uint) (*entity.Donation, error) {
	var donationModel model.DonationModel
	if err := forUpdate(r.db).First(&donationModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToDonationEntity(&donationModel), nil
}

func (r *donationRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.DonationModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *donationRepository) ListByDonor(donorID uint) ([]*entity.Donation, error) {
	return r.listWhere("donor_id = ?", donorID)
}

func (r *donationRepository) ListByCampaign(campaignID uint) ([]*entity.Donation, error) {
	return r.listWhere("campaign_id = ?", campaignID)
}

func (r *donationRepository) listWhere(query string, args ...interface{}) ([]*entity.Donation, error) {
	var donationModels []model.DonationModel
	if err := r.db.Where(query, args...).Order("id ASC").Find(&donationModels).Error; err != nil {
		return nil, err
	}

	donations := make([]*entity.Donation, len(donationModels))
	for i := range donationModels {
		donations[i] = ToDonationEntity(&donationModels[i])
	}
	return donations, nil
}

// UpdateStatus touches only the status column; amount is immutable.
func (r *donationRepository) UpdateStatus(id uint, status entity.DonationStatus) error {
	result := r.db.Model(&model.DonationModel{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id uint) (*entity.Payment, error)
	GetByIDForUpdate(id uint) (*entity.Payment, error)
	List() ([]*entity.Payment, error)
	ListByDonation(donationID uint) ([]*entity.Payment, error)
	ListByStatus(status entity.PaymentStatus) ([]*entity.Payment, error)
	ListByMethod(method string) ([]*entity.Payment, error)
	Count() (int64, error)
	SumAmount() (decimal.Decimal, error)
	Update(payment *entity.Payment) error
	Delete(id uint) error
}

type paymentRepository struct {
	db *gorm.DB
}

func (r *paymentRepository) Create(payment *entity.Payment) error {
	paymentModel := ToPaymentModel(payment)
	if err := r.db.Create(paymentModel).Error; err != nil {
		return translateError(err)
	}
	*payment = *ToPaymentEntity(paymentModel)
	return nil
}

func (r *paymentRepository) GetByID(id uint) (*entity.Payment, error) {
	var paymentModel model.PaymentModel
	if err := r.db.First(&paymentModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToPaymentEntity(&paymentModel), nil
}

func (r *paymentRepository) GetByIDForUpdate(id uint) (*entity.Payment, error) {
	var paymentModel model.PaymentModel
	if err := forUpdate(r.db).First(&paymentModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToPaymentEntity(&paymentModel), nil
}

func (r *paymentRepository) List() ([]*entity.Payment, error) {
	return r.find(r.db)
}

func (r *paymentRepository) ListByDonation(donationID uint) ([]*entity.Payment, error) {
	return r.find(r.db.Where("donation_id = ?", donationID))
}

func (r *paymentRepository) ListByStatus(status entity.PaymentStatus) ([]*entity.Payment, error) {
	return r.find(r.db.Where("status = ?", string(status)))
}

// ListByMethod matches the method case-insensitively.
func (r *paymentRepository) ListByMethod(method string) ([]*entity.Payment, error) {
	return r.find(r.db.Where("LOWER(method) = ?", strings.ToLower(strings.TrimSpace(method))))
}

func (r *paymentRepository) find(query *gorm.DB) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	if err := query.Order("id ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = ToPaymentEntity(&paymentModels[i])
	}
	return payments, nil
}

func (r *paymentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.PaymentModel{}).Count(&count).Error
	return count, err
}

func (r *paymentRepository) SumAmount() (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.Model(&model.PaymentModel{}).Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *paymentRepository) Update(payment *entity.Payment) error {
	paymentModel := ToPaymentModel(payment)
	if err := r.db.Save(paymentModel).Error; err != nil {
		return translateError(err)
	}
	*payment = *ToPaymentEntity(paymentModel)
	return nil
}

func (r *paymentRepository) Delete(id uint) error {
	result := r.db.Delete(&model.PaymentModel{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
