package persistent

import (
	"crowdfund/internal/entity"
	"crowdfund/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByIdentifier(identifier string) (*entity.User, error)
	ExistsByUsernameOrEmail(username, email string, excludeID uint) (bool, error)
	List() ([]*entity.User, error)
	Search(keyword string) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return translateError(err)
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id uint) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.First(&userModel, id).Error; err != nil {
		return nil, translateError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByIdentifier(identifier string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&userModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) ExistsByUsernameOrEmail(username, email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.UserModel{}).Where("username = ? OR email = ?", username, email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) List() ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, err
	}
	return toUserEntities(userModels), nil
}

func (r *userRepository) Search(keyword string) ([]*entity.User, error) {
	pattern := containsPattern(keyword)
	var userModels []model.UserModel
	if err := r.db.Where(`LOWER(username) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id ASC").
		Find(&userModels).Error; err != nil {
		return nil, err
	}
	return toUserEntities(userModels), nil
}

func (r *userRepository) Update(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Save(userModel).Error; err != nil {
		return translateError(err)
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) Delete(id uint) error {
	result := r.db.Delete(&model.UserModel{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func toUserEntities(models []model.UserModel) []*entity.User {
	users := make([]*entity.User, len(models))
	for i := range models {
		users[i] = ToUserEntity(&models[i])
	}
	return users
}
