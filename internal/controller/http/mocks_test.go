package http

import (
	"context"
	"io"

	"crowdfund/internal/entity"
	"crowdfund/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCampaignUseCase is a mock implementation of CampaignUseCase
type MockCampaignUseCase struct {
	mock.Mock
}

func (m *MockCampaignUseCase) campaign(args mock.Arguments) (*entity.Campaign, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignUseCase) campaigns(args mock.Arguments) ([]*entity.Campaign, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Campaign), args.Error(1)
}

func (m *MockCampaignUseCase) change(args mock.Arguments) (*usecase.CampaignChange, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CampaignChange), args.Error(1)
}

func (m *MockCampaignUseCase) CreateCampaign(ctx context.Context, input usecase.CreateCampaignInput) (*entity.Campaign, error) {
	return m.campaign(m.Called(input))
}

func (m *MockCampaignUseCase) GetCampaign(ctx context.Context, id uint) (*entity.Campaign, error) {
	return m.campaign(m.Called(id))
}

func (m *MockCampaignUseCase) ListCampaigns(ctx context.Context) ([]*entity.Campaign, error) {
	return m.campaigns(m.Called())
}

func (m *MockCampaignUseCase) ListByCreator(ctx context.Context, creatorID uint) ([]*entity.Campaign, error) {
	return m.campaigns(m.Called(creatorID))
}

func (m *MockCampaignUseCase) ListByCategory(ctx context.Context, category string) ([]*entity.Campaign, error) {
	return m.campaigns(m.Called(category))
}

func (m *MockCampaignUseCase) ListByStatus(ctx context.Context, status string) ([]*entity.Campaign, error) {
	return m.campaigns(m.Called(status))
}

func (m *MockCampaignUseCase) SearchByTitle(ctx context.Context, title string) ([]*entity.Campaign, error) {
	return m.campaigns(m.Called(title))
}

func (m *MockCampaignUseCase) Paginate(ctx context.Context, page, perPage int, category, status string) (*entity.CampaignPage, error) {
	args := m.Called(page, perPage, category, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CampaignPage), args.Error(1)
}

func (m *MockCampaignUseCase) UpdateStatus(ctx context.Context, actor usecase.Actor, id uint, status string) (*usecase.CampaignChange, error) {
	return m.change(m.Called(actor, id, status))
}

func (m *MockCampaignUseCase) Approve(ctx context.Context, actor usecase.Actor, id uint) (*usecase.CampaignChange, error) {
	return m.change(m.Called(actor, id))
}

func (m *MockCampaignUseCase) UpdateCampaign(ctx context.Context, actor usecase.Actor, id uint, patch usecase.CampaignPatch) (*usecase.CampaignChange, error) {
	return m.change(m.Called(actor, id, patch))
}

func (m *MockCampaignUseCase) UploadImage(ctx context.Context, actor usecase.Actor, id uint, file io.Reader, filename, contentType string) (*entity.Campaign, error) {
	return m.campaign(m.Called(actor, id, filename, contentType))
}

func (m *MockCampaignUseCase) DeleteCampaign(ctx context.Context, actor usecase.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

func (m *MockCampaignUseCase) PostUpdate(ctx context.Context, actor usecase.Actor, campaignID uint, title, content string) (*entity.CampaignUpdate, error) {
	args := m.Called(actor, campaignID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CampaignUpdate), args.Error(1)
}

func (m *MockCampaignUseCase) GetUpdate(ctx context.Context, id uint) (*entity.CampaignUpdate, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CampaignUpdate), args.Error(1)
}

func (m *MockCampaignUseCase) ListUpdates(ctx context.Context, campaignID uint) ([]*entity.CampaignUpdate, error) {
	args := m.Called(campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CampaignUpdate), args.Error(1)
}

var _ usecase.CampaignUseCase = (*MockCampaignUseCase)(nil)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) comment(args mock.Arguments) (*entity.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) comments(args mock.Arguments) ([]*entity.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) CreateComment(ctx context.Context, userID, campaignID uint, content string) (*entity.Comment, error) {
	return m.comment(m.Called(userID, campaignID, content))
}

func (m *MockCommentUseCase) GetComment(ctx context.Context, id uint) (*entity.Comment, error) {
	return m.comment(m.Called(id))
}

func (m *MockCommentUseCase) UpdateComment(ctx context.Context, actor usecase.Actor, id uint, content string) (*entity.Comment, error) {
	return m.comment(m.Called(actor, id, content))
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, actor usecase.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

func (m *MockCommentUseCase) ListByUser(ctx context.Context, userID uint) ([]*entity.Comment, error) {
	return m.comments(m.Called(userID))
}

func (m *MockCommentUseCase) ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.Comment, error) {
	return m.comments(m.Called(campaignID))
}

func (m *MockCommentUseCase) ToggleLike(ctx context.Context, commentID, userID uint) (*entity.LikeResult, error) {
	args := m.Called(commentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeResult), args.Error(1)
}

func (m *MockCommentUseCase) GetLikes(ctx context.Context, commentID uint) (int64, error) {
	args := m.Called(commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentUseCase) ReconcileLikes(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentUseCase) CountComments(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentUseCase) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentUseCase) CountByCampaign(ctx context.Context, campaignID uint) (int64, error) {
	args := m.Called(campaignID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentUseCase) TopCommenters(ctx context.Context, limit int) ([]entity.CommenterStat, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CommenterStat), args.Error(1)
}

func (m *MockCommentUseCase) TopCommentedCampaigns(ctx context.Context, limit int) ([]entity.CampaignCommentStat, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CampaignCommentStat), args.Error(1)
}

func (m *MockCommentUseCase) AverageLikes(ctx context.Context) (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCommentUseCase) Stats(ctx context.Context, limit int) (*usecase.CommentStats, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CommentStats), args.Error(1)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

// MockFollowUseCase is a mock implementation of FollowUseCase
type MockFollowUseCase struct {
	mock.Mock
}

func (m *MockFollowUseCase) follow(args mock.Arguments) (*entity.Follow, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Follow), args.Error(1)
}

func (m *MockFollowUseCase) follows(args mock.Arguments) ([]*entity.Follow, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Follow), args.Error(1)
}

func (m *MockFollowUseCase) Follow(ctx context.Context, userID, campaignID uint) (*entity.Follow, error) {
	return m.follow(m.Called(userID, campaignID))
}

func (m *MockFollowUseCase) Unfollow(ctx context.Context, userID, campaignID uint) error {
	return m.Called(userID, campaignID).Error(0)
}

func (m *MockFollowUseCase) GetFollow(ctx context.Context, id uint) (*entity.Follow, error) {
	return m.follow(m.Called(id))
}

func (m *MockFollowUseCase) ListFollows(ctx context.Context) ([]*entity.Follow, error) {
	return m.follows(m.Called())
}

func (m *MockFollowUseCase) ListByUser(ctx context.Context, userID uint) ([]*entity.Follow, error) {
	return m.follows(m.Called(userID))
}

func (m *MockFollowUseCase) ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.Follow, error) {
	return m.follows(m.Called(campaignID))
}

func (m *MockFollowUseCase) IsFollowing(ctx context.Context, userID, campaignID uint) (bool, error) {
	args := m.Called(userID, campaignID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowUseCase) CountFollowers(ctx context.Context, campaignID uint) (int64, error) {
	args := m.Called(campaignID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowUseCase) CountFollowed(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowUseCase) DeleteFollow(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

var _ usecase.FollowUseCase = (*MockFollowUseCase)(nil)

// MockUserUseCase is a mock implementation of UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) user(args mock.Arguments) (*entity.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, string, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockUserUseCase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	args := m.Called(identifier, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockUserUseCase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return m.user(m.Called(id))
}

func (m *MockUserUseCase) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.user(m.Called(username))
}

func (m *MockUserUseCase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.user(m.Called(email))
}

func (m *MockUserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUseCase) SearchUsers(ctx context.Context, keyword string) ([]*entity.User, error) {
	args := m.Called(keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateUser(ctx context.Context, id uint, patch usecase.UserPatch) (*entity.User, error) {
	return m.user(m.Called(id, patch))
}

func (m *MockUserUseCase) ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	return m.Called(id, oldPassword, newPassword).Error(0)
}

func (m *MockUserUseCase) UploadProfileImage(ctx context.Context, id uint, file io.Reader, filename, contentType string) (*entity.User, error) {
	return m.user(m.Called(id, filename, contentType))
}

func (m *MockUserUseCase) DeleteUser(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

// MockDonationUseCase is a mock implementation of DonationUseCase
type MockDonationUseCase struct {
	mock.Mock
}

func (m *MockDonationUseCase) donation(args mock.Arguments) (*entity.Donation, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Donation), args.Error(1)
}

func (m *MockDonationUseCase) donations(args mock.Arguments) ([]*entity.Donation, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Donation), args.Error(1)
}

func (m *MockDonationUseCase) CreateDonation(ctx context.Context, input usecase.CreateDonationInput) (*entity.Donation, error) {
	return m.donation(m.Called(input))
}

func (m *MockDonationUseCase) GetDonation(ctx context.Context, id uint) (*entity.Donation, error) {
	return m.donation(m.Called(id))
}

func (m *MockDonationUseCase) ListByUser(ctx context.Context, userID uint) ([]*entity.Donation, error) {
	return m.donations(m.Called(userID))
}

func (m *MockDonationUseCase) ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.Donation, error) {
	return m.donations(m.Called(campaignID))
}

func (m *MockDonationUseCase) UpdateStatus(ctx context.Context, id uint, status string) (*entity.Donation, error) {
	return m.donation(m.Called(id, status))
}

func (m *MockDonationUseCase) CancelDonation(ctx context.Context, actor usecase.Actor, id uint) (*entity.Donation, error) {
	return m.donation(m.Called(actor, id))
}

var _ usecase.DonationUseCase = (*MockDonationUseCase)(nil)

// MockPaymentUseCase is a mock implementation of PaymentUseCase
type MockPaymentUseCase struct {
	mock.Mock
}

func (m *MockPaymentUseCase) payment(args mock.Arguments) (*entity.Payment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentUseCase) payments(args mock.Arguments) ([]*entity.Payment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *MockPaymentUseCase) CreatePayment(ctx context.Context, input usecase.CreatePaymentInput) (*entity.Payment, error) {
	return m.payment(m.Called(input))
}

func (m *MockPaymentUseCase) GetPayment(ctx context.Context, id uint) (*entity.Payment, error) {
	return m.payment(m.Called(id))
}

func (m *MockPaymentUseCase) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	return m.payments(m.Called())
}

func (m *MockPaymentUseCase) ListByDonation(ctx context.Context, donationID uint) ([]*entity.Payment, error) {
	return m.payments(m.Called(donationID))
}

func (m *MockPaymentUseCase) UpdateStatus(ctx context.Context, id uint, status string) (*entity.Payment, error) {
	return m.payment(m.Called(id, status))
}

func (m *MockPaymentUseCase) UpdateMethod(ctx context.Context, id uint, method string) (*entity.Payment, error) {
	return m.payment(m.Called(id, method))
}

func (m *MockPaymentUseCase) DeletePayment(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockPaymentUseCase) CountPayments(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentUseCase) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called()
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentUseCase) FilterByStatus(ctx context.Context, status string) ([]*entity.Payment, error) {
	return m.payments(m.Called("status", status))
}

func (m *MockPaymentUseCase) FilterByMethod(ctx context.Context, method string) ([]*entity.Payment, error) {
	return m.payments(m.Called("method", method))
}

var _ usecase.PaymentUseCase = (*MockPaymentUseCase)(nil)

// MockReviewUseCase is a mock implementation of ReviewUseCase
type MockReviewUseCase struct {
	mock.Mock
}

func (m *MockReviewUseCase) review(args mock.Arguments) (*entity.AdminReview, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminReview), args.Error(1)
}

func (m *MockReviewUseCase) reviews(args mock.Arguments) ([]*entity.AdminReview, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AdminReview), args.Error(1)
}

func (m *MockReviewUseCase) CreateReview(ctx context.Context, adminID, campaignID uint, decision, comments string) (*entity.AdminReview, error) {
	return m.review(m.Called(adminID, campaignID, decision, comments))
}

func (m *MockReviewUseCase) GetReview(ctx context.Context, id uint) (*entity.AdminReview, error) {
	return m.review(m.Called(id))
}

func (m *MockReviewUseCase) ListByAdmin(ctx context.Context, adminID uint) ([]*entity.AdminReview, error) {
	return m.reviews(m.Called("admin", adminID))
}

func (m *MockReviewUseCase) ListByCampaign(ctx context.Context, campaignID uint) ([]*entity.AdminReview, error) {
	return m.reviews(m.Called("campaign", campaignID))
}

func (m *MockReviewUseCase) ListByDecision(ctx context.Context, decision string) ([]*entity.AdminReview, error) {
	return m.reviews(m.Called(decision))
}

func (m *MockReviewUseCase) UpdateReview(ctx context.Context, id uint, patch usecase.ReviewPatch) (*entity.AdminReview, error) {
	return m.review(m.Called(id, patch))
}

func (m *MockReviewUseCase) DeleteReview(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

var _ usecase.ReviewUseCase = (*MockReviewUseCase)(nil)
