package persistent

import (
	"crowdfund/internal/entity"
	"crowdfund/internal/model"

	"gorm.io/datatypes"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.UserRole(m.Role),
		ProfileImage: m.ProfileImage,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:           e.ID,
		Username:     e.Username,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Role:         string(e.Role),
		ProfileImage: e.ProfileImage,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToCampaignEntity(m *model.CampaignModel) *entity.Campaign {
	if m == nil {
		return nil
	}

	return &entity.Campaign{
		ID:               m.ID,
		CreatorID:        m.CreatorID,
		Title:            m.Title,
		ShortDescription: m.ShortDescription,
		LongDescription:  m.LongDescription,
		Category:         entity.CampaignCategory(m.Category),
		GoalAmount:       m.GoalAmount,
		RaisedAmount:     m.RaisedAmount,
		Status:           entity.CampaignStatus(m.Status),
		ImageURL:         m.ImageURL,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToCampaignModel(e *entity.Campaign) *model.CampaignModel {
	if e == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:               e.ID,
		CreatorID:        e.CreatorID,
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		LongDescription:  e.LongDescription,
		Category:         string(e.Category),
		GoalAmount:       e.GoalAmount,
		RaisedAmount:     e.RaisedAmount,
		Status:           string(e.Status),
		ImageURL:         e.ImageURL,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToCampaignUpdateEntity(m *model.CampaignUpdateModel) *entity.CampaignUpdate {
	if m == nil {
		return nil
	}

	stored := m.Changes.Data()
	var changes []entity.FieldChange
	if len(stored) > 0 {
		changes = make([]entity.FieldChange, len(stored))
		for i, c := range stored {
			changes[i] = entity.FieldChange{Field: c.Field, Old: c.Old, New: c.New}
		}
	}

	return &entity.CampaignUpdate{
		ID:         m.ID,
		CampaignID: m.CampaignID,
		UserID:     m.UserID,
		Title:      m.Title,
		Content:    m.Content,
		Changes:    changes,
		CreatedAt:  m.CreatedAt,
	}
}

func ToCampaignUpdateModel(e *entity.CampaignUpdate) *model.CampaignUpdateModel {
	if e == nil {
		return nil
	}

	changes := make([]model.FieldChangeModel, len(e.Changes))
	for i, c := range e.Changes {
		changes[i] = model.FieldChangeModel{Field: c.Field, Old: c.Old, New: c.New}
	}

	return &model.CampaignUpdateModel{
		ID:         e.ID,
		CampaignID: e.CampaignID,
		UserID:     e.UserID,
		Title:      e.Title,
		Content:    e.Content,
		Changes:    datatypes.NewJSONType(changes),
		CreatedAt:  e.CreatedAt,
	}
}

func ToDonationEntity(m *model.DonationModel) *entity.Donation {
	if m == nil {
		return nil
	}

	return &entity.Donation{
		ID:           m.ID,
		CampaignID:   m.CampaignID,
		DonorID:      m.DonorID,
		Amount:       m.Amount,
		Status:       entity.DonationStatus(m.Status),
		Message:      m.Message,
		DonationDate: m.DonationDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToDonationModel(e *entity.Donation) *model.DonationModel {
	if e == nil {
		return nil
	}

	return &model.DonationModel{
		ID:           e.ID,
		CampaignID:   e.CampaignID,
		DonorID:      e.DonorID,
		Amount:       e.Amount,
		Status:       string(e.Status),
		Message:      e.Message,
		DonationDate: e.DonationDate,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToPaymentEntity(m *model.PaymentModel) *entity.Payment {
	if m == nil {
		return nil
	}

	return &entity.Payment{
		ID:              m.ID,
		DonationID:      m.DonationID,
		Amount:          m.Amount,
		Method:          entity.PaymentMethod(m.Method),
		Status:          entity.PaymentStatus(m.Status),
		TransactionRef:  m.TransactionRef,
		TransactionDate: m.TransactionDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToPaymentModel(e *entity.Payment) *model.PaymentModel {
	if e == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:              e.ID,
		DonationID:      e.DonationID,
		Amount:          e.Amount,
		Method:          string(e.Method),
		Status:          string(e.Status),
		TransactionRef:  e.TransactionRef,
		TransactionDate: e.TransactionDate,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToAdminReviewEntity(m *model.AdminReviewModel) *entity.AdminReview {
	if m == nil {
		return nil
	}

	return &entity.AdminReview{
		ID:         m.ID,
		CampaignID: m.CampaignID,
		AdminID:    m.AdminID,
		Decision:   entity.ReviewDecision(m.Decision),
		Comments:   m.Comments,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToAdminReviewModel(e *entity.AdminReview) *model.AdminReviewModel {
	if e == nil {
		return nil
	}

	return &model.AdminReviewModel{
		ID:         e.ID,
		CampaignID: e.CampaignID,
		AdminID:    e.AdminID,
		Decision:   string(e.Decision),
		Comments:   e.Comments,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:         m.ID,
		CampaignID: m.CampaignID,
		UserID:     m.UserID,
		Content:    m.Content,
		Likes:      m.Likes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:         e.ID,
		CampaignID: e.CampaignID,
		UserID:     e.UserID,
		Content:    e.Content,
		Likes:      e.Likes,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToFollowEntity(m *model.FollowModel) *entity.Follow {
	if m == nil {
		return nil
	}

	return &entity.Follow{
		ID:         m.ID,
		UserID:     m.UserID,
		CampaignID: m.CampaignID,
		CreatedAt:  m.CreatedAt,
	}
}

func ToFollowModel(e *entity.Follow) *model.FollowModel {
	if e == nil {
		return nil
	}

	return &model.FollowModel{
		ID:         e.ID,
		UserID:     e.UserID,
		CampaignID: e.CampaignID,
		CreatedAt:  e.CreatedAt,
	}
}
