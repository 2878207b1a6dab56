package persistent

import (
	"crowdfund/internal/entity"
	"crowdfund/internal/model"

	"gorm.io/gorm"
)

type CampaignFilter struct {
	CreatorID uint
	Category  entity.CampaignCategory
	Status    entity.CampaignStatus
}

type CampaignRepository interface {
	Create(campaign *entity.Campaign) error
	GetByID(id uint) (*entity.Campaign, error)
	// GetByIDForUpdate row-locks the campaign for the rest of the transaction.
	GetByIDForUpdate(id uint) (*entity.Campaign, error)
	Exists(id uint) (bool, error)
	List(filter CampaignFilter) ([]*entity.Campaign, error)
	Page(filter CampaignFilter, limit, offset int) ([]*entity.Campaign, int64, error)
	SearchByTitle(title string) ([]*entity.Campaign, error)
	Update(campaign *entity.Campaign) error
	Delete(id uint) error
}

type campaignRepository struct {
	db *gorm.DB
}

func (r *campaignRepository) Create(campaign *entity.Campaign) error {
	campaignModel := ToCampaignModel(campaign)
	if err := r.db.Create(campaignModel).Error; err != nil {
		return translateError(err)
	}
	*campaign = *ToCampaignEntity(campaignModel)
	return nil
}

func (r *campaignRepository) GetByID(id uint) (*entity.Campaign, error) {
	var campaignModel model.CampaignModel
	if err := r.db.First(&campaignModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToCampaignEntity(&campaignModel), nil
}

func (r *campaignRepository) GetByIDForUpdate(id uint) (*entity.Campaign, error) {
	var campaignModel model.CampaignModel
	if err := forUpdate(r.db).First(&campaignModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToCampaignEntity(&campaignModel), nil
}

func (r *campaignRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.CampaignModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *campaignRepository) filtered(filter CampaignFilter) *gorm.DB {
	query := r.db.Model(&model.CampaignModel{})
	if filter.CreatorID != 0 {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	return query
}

func (r *campaignRepository) List(filter CampaignFilter) ([]*entity.Campaign, error) {
	var campaignModels []model.CampaignModel
	if err := r.filtered(filter).Order("id ASC").Find(&campaignModels).Error; err != nil {
		return nil, err
	}
	return toCampaignEntities(campaignModels), nil
}

func (r *campaignRepository) Page(filter CampaignFilter, limit, offset int) ([]*entity.Campaign, int64, error) {
	var total int64
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaignModels []model.CampaignModel
	if err := r.filtered(filter).Order("id ASC").Limit(limit).Offset(offset).Find(&campaignModels).Error; err != nil {
		return nil, 0, err
	}
	return toCampaignEntities(campaignModels), total, nil
}

func (r *campaignRepository) SearchByTitle(title string) ([]*entity.Campaign, error) {
	var campaignModels []model.CampaignModel
	if err := r.db.Where(`LOWER(title) LIKE ? ESCAPE '\'`, containsPattern(title)).
		Order("id ASC").
		Find(&campaignModels).Error; err != nil {
		return nil, err
	}
	return toCampaignEntities(campaignModels), nil
}

func (r *campaignRepository) Update(campaign *entity.Campaign) error {
	campaignModel := ToCampaignModel(campaign)
	if err := r.db.Save(campaignModel).Error; err != nil {
		return translateError(err)
	}
	*campaign = *ToCampaignEntity(campaignModel)
	return nil
}

func (r *campaignRepository) Delete(id uint) error {
	result := r.db.Delete(&model.CampaignModel{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func toCampaignEntities(models []model.CampaignModel) []*entity.Campaign {
	campaigns := make([]*entity.Campaign, len(models))
	for i := range models {
		campaigns[i] = ToCampaignEntity(&models[i])
	}
	return campaigns
}

type CampaignUpdateRepository interface {
	Create(update *entity.CampaignUpdate) error
	GetByID(id uint) (*entity.CampaignUpdate, error)
	ListByCampaign(campaignID uint) ([]*entity.CampaignUpdate, error)
	CountByCampaign(campaignID uint) (int64, error)
}

type campaignUpdateRepository struct {
	db *gorm.DB
}

func (r *campaignUpdateRepository) Create(update *entity.CampaignUpdate) error {
	updateModel := ToCampaignUpdateModel(update)
	if err := r.db.Create(updateModel).Error; err != nil {
		return translateError(err)
	}
	*update = *ToCampaignUpdateEntity(updateModel)
	return nil
}

func (r *campaignUpdateRepository) GetByID(id uint) (*entity.CampaignUpdate, error) {
	var updateModel model.CampaignUpdateModel
	if err := r.db.First(&updateModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToCampaignUpdateEntity(&updateModel), nil
}

func (r *campaignUpdateRepository) ListByCampaign(campaignID uint) ([]*entity.CampaignUpdate, error) {
	var updateModels []model.CampaignUpdateModel
	if err := r.db.Where("campaign_id = ?", campaignID).Order("id ASC").Find(&updateModels).Error; err != nil {
		return nil, err
	}

	updates := make([]*entity.CampaignUpdate, len(updateModels))
	for i := range updateModels {
		updates[i] = ToCampaignUpdateEntity(&updateModels[i])
	}
	return updates, nil
}

func (r *campaignUpdateRepository) CountByCampaign(campaignID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.CampaignUpdateModel{}).Where("campaign_id = ?", campaignID).Count(&count).Error
	return count, err
}
