package persistent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crowdfund/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store hands out repositories bound to one connection or transaction.
// Repositories obtained from the Store passed to Transaction's callback all
// share that transaction.
type Store interface {
	Users() UserRepository
	Campaigns() CampaignRepository
	Updates() CampaignUpdateRepository
	Donations() DonationRepository
	Payments() PaymentRepository
	Reviews() AdminReviewRepository
	Comments() CommentRepository
	Follows() FollowRepository

	WithContext(ctx context.Context) Store
	// Transaction commits when fn returns nil and rolls back on error or panic.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) Users() UserRepository                { return &userRepository{db: s.db} }
func (s *store) Campaigns() CampaignRepository        { return &campaignRepository{db: s.db} }
func (s *store) Updates() CampaignUpdateRepository    { return &campaignUpdateRepository{db: s.db} }
func (s *store) Donations() DonationRepository        { return &donationRepository{db: s.db} }
func (s *store) Payments() PaymentRepository          { return &paymentRepository{db: s.db} }
func (s *store) Reviews() AdminReviewRepository       { return &adminReviewRepository{db: s.db} }
func (s *store) Comments() CommentRepository          { return &commentRepository{db: s.db} }
func (s *store) Follows() FollowRepository            { return &followRepository{db: s.db} }

func (s *store) WithContext(ctx context.Context) Store {
	return &store{db: s.db.WithContext(ctx)}
}

func (s *store) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx})
	})
}

// translateError maps driver and gorm errors onto domain error kinds. Other
// errors pass through unchanged.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", entity.ErrConflict, err)
	}
	return err
}

// containsPattern builds a case-folded LIKE pattern matching keyword as a
// literal substring. Use it with ESCAPE '\'.
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
