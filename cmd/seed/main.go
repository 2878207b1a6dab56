package main

import (
	"context"
	"flag"
	"fmt"

	"crowdfund/internal/entity"
	"crowdfund/internal/model"
	"crowdfund/internal/repo/persistent"
	"crowdfund/internal/usecase"
	"crowdfund/pkg/config"
	"crowdfund/pkg/database"
	"crowdfund/pkg/jwt"
	"crowdfund/pkg/logger"

	"github.com/shopspring/decimal"
)

func main() {
	var migrate bool
	flag.BoolVar(&migrate, "migrate", false, "Auto-migrate the schema before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if migrate {
		if err := model.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate: %v", err)
			panic(err)
		}
	}

	store := persistent.NewStore(db)
	if err := seedDatabase(context.Background(), store, jwt.NewService(cfg.JWTSecret), log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

type seeder struct {
	users     usecase.UserUseCase
	campaigns usecase.CampaignUseCase
	donations usecase.DonationUseCase
	payments  usecase.PaymentUseCase
	reviews   usecase.ReviewUseCase
	comments  usecase.CommentUseCase
	follows   usecase.FollowUseCase
}

func seedDatabase(ctx context.Context, store persistent.Store, jwtService *jwt.Service, log *logger.Logger) error {
	s := seeder{
		users:     usecase.NewUserUseCase(store, jwtService, nil, log),
		campaigns: usecase.NewCampaignUseCase(store, nil, log),
		donations: usecase.NewDonationUseCase(store, log),
		payments:  usecase.NewPaymentUseCase(store, log),
		reviews:   usecase.NewReviewUseCase(store, log),
		comments:  usecase.NewCommentUseCase(store, log),
		follows:   usecase.NewFollowUseCase(store, log),
	}

	existing, err := s.users.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("Database already has %d users, skipping seed", len(existing))
		return nil
	}

	testUsers := []struct {
		username string
		role     string
	}{
		{"admin", "admin"},
		{"alice", "creator"},
		{"bob", "creator"},
		{"carol", "donor"},
		{"dave", "donor"},
		{"erin", "donor"},
	}

	users := make(map[string]*entity.User, len(testUsers))
	for _, u := range testUsers {
		role := u.role
		if role == "admin" {
			role = "donor"
		}
		user, _, err := s.users.Register(ctx, usecase.RegisterInput{
			Username: u.username,
			Email:    u.username + "@test.com",
			Password: "password123",
			Role:     role,
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", u.username, err)
		}
		// Admins cannot self-register; promote after the fact.
		if u.role == "admin" {
			if user, err = s.users.UpdateUser(ctx, user.ID, usecase.UserPatch{Role: &u.role}); err != nil {
				return fmt.Errorf("promote %s: %w", u.username, err)
			}
		}
		users[u.username] = user
	}
	admin := usecase.Actor{UserID: users["admin"].ID, Role: entity.RoleAdmin}

	testCampaigns := []struct {
		creator  string
		title    string
		category string
		goal     int64
		approve  bool
	}{
		{"alice", "Community Solar Roof", "Community", 15000, true},
		{"alice", "Open Source Braille Printer", "Technology", 8000, true},
		{"bob", "Neighbourhood Mural", "Arts", 2500, true},
		{"bob", "Mobile Health Clinic", "Health", 40000, false},
	}

	var campaigns []*entity.Campaign
	for _, c := range testCampaigns {
		campaign, err := s.campaigns.CreateCampaign(ctx, usecase.CreateCampaignInput{
			CreatorID:        users[c.creator].ID,
			Title:            c.title,
			ShortDescription: "Seeded campaign: " + c.title,
			Category:         c.category,
			GoalAmount:       decimal.NewFromInt(c.goal),
		})
		if err != nil {
			return fmt.Errorf("create campaign %q: %w", c.title, err)
		}
		if c.approve {
			if _, err := s.campaigns.Approve(ctx, admin, campaign.ID); err != nil {
				return err
			}
			if _, err := s.reviews.CreateReview(ctx, admin.UserID, campaign.ID, "approved", "Looks good"); err != nil {
				return err
			}
		}
		campaigns = append(campaigns, campaign)
	}

	for i, donor := range []string{"carol", "dave", "erin"} {
		for j, campaign := range campaigns[:3] {
			amount := decimal.NewFromInt(int64(25 * (i + j + 1)))
			donation, err := s.donations.CreateDonation(ctx, usecase.CreateDonationInput{
				DonorID:    users[donor].ID,
				CampaignID: campaign.ID,
				Amount:     amount,
				Status:     "successful",
				Message:    "Good luck!",
			})
			if err != nil {
				return err
			}
			if _, err := s.payments.CreatePayment(ctx, usecase.CreatePaymentInput{
				DonationID: donation.ID,
				Amount:     amount,
				Method:     []string{"credit_card", "paypal", "bank_transfer"}[i],
				Status:     "successful",
			}); err != nil {
				return err
			}
		}

		if _, err := s.follows.Follow(ctx, users[donor].ID, campaigns[i].ID); err != nil {
			return err
		}

		comment, err := s.comments.CreateComment(ctx, users[donor].ID, campaigns[0].ID, "Excited to see this happen!")
		if err != nil {
			return err
		}
		if _, err := s.comments.ToggleLike(ctx, comment.ID, users["alice"].ID); err != nil {
			return err
		}
	}

	log.Info("Seeded %d users and %d campaigns", len(users), len(campaigns))
	return nil
}
