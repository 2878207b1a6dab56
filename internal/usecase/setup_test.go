package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"

	"crowdfund/internal/entity"
	"crowdfund/internal/model"
	"crowdfund/internal/repo/persistent"
	"crowdfund/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database. A single connection keeps
// every statement on the same memory database and serialises transactions.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, model.AutoMigrate(db))
	return db
}

func newTestStore(t *testing.T) persistent.Store {
	return persistent.NewStore(newTestDB(t))
}

func testLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, io.Discard)
}

func seedUser(t *testing.T, store persistent.Store, username string, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	require.NoError(t, store.Users().Create(user))
	return user
}

func seedCampaign(t *testing.T, store persistent.Store, creatorID uint, title string) *entity.Campaign {
	t.Helper()
	uc := NewCampaignUseCase(store, nil, testLogger())
	campaign, err := uc.CreateCampaign(context.Background(), CreateCampaignInput{
		CreatorID:  creatorID,
		Title:      title,
		Category:   "Technology",
		GoalAmount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	return campaign
}

func seedDonation(t *testing.T, store persistent.Store, donorID, campaignID uint, amount int64) *entity.Donation {
	t.Helper()
	uc := NewDonationUseCase(store, testLogger())
	donation, err := uc.CreateDonation(context.Background(), CreateDonationInput{
		DonorID:    donorID,
		CampaignID: campaignID,
		Amount:     decimal.NewFromInt(amount),
	})
	require.NoError(t, err)
	return donation
}
