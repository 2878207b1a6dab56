package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"crowdfund/internal/entity"
	"crowdfund/internal/repo/persistent"
	"crowdfund/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxTitleLength = 80
	defaultPerPage = 10
	maxPerPage     = 100
)

type CreateCampaignInput struct {
	CreatorID        uint
	Title            string
	ShortDescription string
	LongDescription  string
	Category         string
	Status           string
	GoalAmount       decimal.Decimal
	ImageURL         string
	StartDate        *time.Time
	EndDate          *time.Time
}

// CampaignPatch holds the fields a campaign owner may edit. Nil fields are
// left alone.
type CampaignPatch struct {
	Title            *string
	ShortDescription *string
	LongDescription  *string
	Category         *string
	GoalAmount       *decimal.Decimal
	RaisedAmount     *decimal.Decimal
	ImageURL         *string
	EndDate          *time.Time
}

// CampaignChange is the outcome of a status or field update. Changed is
// false when the request matched the stored values; Log is nil in that case.
type CampaignChange struct {
	Campaign *entity.Campaign       `json:"campaign"`
	Changed  bool                   `json:"changed"`
	Log      *entity.CampaignUpdate `json:"update,omitempty"`
}

type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, input CreateCampaignInput) (*entity.Campaign, error)
	GetCampaign(ctx context.Context, id uint) (*entity.Campaign, error)
	ListCampaigns(ctx context.Context) ([]*entity.Campaign, error)
	ListByCreator(ctx context.Context, creatorID uint) ([]*entity.Campaign, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Campaign, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Campaign, error)
	SearchByTitle(ctx context.Context, title string) ([]*entity.Campaign, error)
	Paginate(ctx context.Context, page, perPage int, category, status string) (*entity.CampaignPage, error)
	UpdateStatus(ctx context.Context, actor Actor, id uint, status string) (*CampaignChange, error)
	Approve(ctx context.Context, actor Actor, id uint) (*CampaignChange, error)
	UpdateCampaign(ctx context.Context, actor Actor, id uint, patch CampaignPatch) (*CampaignChange, error)
	UploadImage(ctx context.Context, actor Actor, id uint, file io.Reader, filename, contentType string) (*entity.Campaign, error)
	DeleteCampaign(ctx context.Context, actor Actor, id uint) error

	PostUpdate(ctx context.Context, actor Actor, campaignID uint, title, content string) (*entity.CampaignUpdate, error)
	GetUpdate(ctx context.Context, id uint) (*entity.CampaignUpdate, error)
	ListUpdates(ctx context.Context, campaignID uint) ([]*entity.CampaignUpdate, error)
}

type campaignUseCase struct {
	store  persistent.Store
	images ImageStore
	logger *logger.Logger
	now    func() time.Time
}

func NewCampaignUseCase(store persistent.Store, images ImageStore, logger *logger.Logger) CampaignUseCase {
	return &campaignUseCase{
		store:  store,
		images: images,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *campaignUseCase) CreateCampaign(ctx context.Context, input CreateCampaignInput) (*entity.Campaign, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationError("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, validationError("title must be at most %d characters", maxTitleLength)
	}
	if !input.GoalAmount.IsPositive() {
		return nil, validationError("goal amount must be greater than 0")
	}

	category, err := entity.ParseCampaignCategory(input.Category)
	if err != nil {
		return nil, err
	}

	status := entity.CampaignPending
	if strings.TrimSpace(input.Status) != "" {
		if status, err = entity.ParseCampaignStatus(input.Status); err != nil {
			return nil, err
		}
	}

	startDate := uc.now().UTC()
	if input.StartDate != nil {
		startDate = input.StartDate.UTC()
	}
	if input.EndDate != nil && !input.EndDate.After(startDate) {
		return nil, validationError("end date must be after start date")
	}

	campaign := &entity.Campaign{
		CreatorID:        input.CreatorID,
		Title:            title,
		ShortDescription: input.ShortDescription,
		LongDescription:  input.LongDescription,
		Category:         category,
		GoalAmount:       input.GoalAmount,
		RaisedAmount:     decimal.Zero,
		Status:           status,
		ImageURL:         input.ImageURL,
		StartDate:        startDate,
		EndDate:          input.EndDate,
	}

	err = uc.store.Transaction(ctx, func(tx persistent.Store) error {
		if _, err := tx.Users().GetByID(input.CreatorID); err != nil {
			return named(err, "creator")
		}
		return tx.Campaigns().Create(campaign)
	})
	if err != nil {
		return nil, fail(uc.logger, "create campaign", err)
	}

	uc.logger.Info("Campaign %d created by user %d", campaign.ID, campaign.CreatorID)
	return campaign, nil
}

func (uc *campaignUseCase) GetCampaign(ctx context.Context, id uint) (*entity.Campaign, error) {
	campaign, err := uc.store.WithContext(ctx).Campaigns().GetByID(id)
	if err != nil {
		return nil, fail(uc.logger, "get campaign", named(err, "campaign"))
	}
	return campaign, nil
}

func (uc *campaignUseCase) ListCampaigns(ctx context.Context) ([]*entity.Campaign, error) {
	return uc.list(ctx, persistent.CampaignFilter{})
}

func (uc *campaignUseCase) ListByCreator(ctx context.Context, creatorID uint) ([]*entity.Campaign, error) {
	return uc.list(ctx, persistent.CampaignFilter{CreatorID: creatorID})
}

func (uc *campaignUseCase) ListByCategory(ctx context.Context, category string) ([]*entity.Campaign, error) {
	parsed, err := entity.ParseCampaignCategory(category)
	if err != nil {
		return nil, err
	}

	campaigns, err := uc.list(ctx, persistent.CampaignFilter{Category: parsed})
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, fmt.Errorf("%w: no campaigns found for category %s", entity.ErrNotFound, parsed)
	}
	return campaigns, nil
}

// ListByStatus accepts "active" for approved campaigns.
func (uc *campaignUseCase) ListByStatus(ctx context.Context, status string) ([]*entity.Campaign, error) {
	parsed, err := entity.ParseCampaignStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.list(ctx, persistent.CampaignFilter{Status: parsed})
}

func (uc *campaignUseCase) list(ctx context.Context, filter persistent.CampaignFilter) ([]*entity.Campaign, error) {
	campaigns, err := uc.store.WithContext(ctx).Campaigns().List(filter)
	if err != nil {
		return nil, fail(uc.logger, "list campaigns", err)
	}
	return campaigns, nil
}

func (uc *campaignUseCase) SearchByTitle(ctx context.Context, title string) ([]*entity.Campaign, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationError("title is required")
	}

	campaigns, err := uc.store.WithContext(ctx).Campaigns().SearchByTitle(title)
	if err != nil {
		return nil, fail(uc.logger, "search campaigns", err)
	}
	if len(campaigns) == 0 {
		return nil, fmt.Errorf("%w: no campaigns found matching title %q", entity.ErrNotFound, title)
	}
	return campaigns, nil
}

func (uc *campaignUseCase) Paginate(ctx context.Context, page, perPage int, category, status string) (*entity.CampaignPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	var filter persistent.CampaignFilter
	if strings.TrimSpace(category) != "" {
		parsed, err := entity.ParseCampaignCategory(category)
		if err != nil {
			return nil, err
		}
		filter.Category = parsed
	}
	if strings.TrimSpace(status) != "" {
		parsed, err := entity.ParseCampaignStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = parsed
	}

	items, total, err := uc.store.WithContext(ctx).Campaigns().Page(filter, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fail(uc.logger, "paginate campaigns", err)
	}
	return &entity.CampaignPage{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

// UpdateStatus moves a campaign along its lifecycle and logs the transition.
// Requesting the current status is a no-op and writes nothing.
func (uc *campaignUseCase) UpdateStatus(ctx context.Context, actor Actor, id uint, status string) (*CampaignChange, error) {
	next, err := entity.ParseCampaignStatus(status)
	if err != nil {
		return nil, err
	}

	result := &CampaignChange{}
	err = uc.store.Transaction(ctx, func(tx persistent.Store) error {
		campaign, err := tx.Campaigns().GetByIDForUpdate(id)
		if err != nil {
			return named(err, "campaign")
		}
		result.Campaign = campaign

		if err := authorizeStatusChange(actor, campaign, next); err != nil {
			return err
		}
		if campaign.Status == next {
			return nil
		}
		if !campaign.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", entity.ErrInvalidTransition, campaign.Status, next)
		}

		change := entity.FieldChange{Field: "status", Old: string(campaign.Status), New: string(next)}
		campaign.Status = next
		if err := tx.Campaigns().Update(campaign); err != nil {
			return err
		}

		log := &entity.CampaignUpdate{
			CampaignID: campaign.ID,
			UserID:     actorID(actor),
			Title:      "Status updated",
			Content:    fmt.Sprintf("status changed from %s to %s", change.Old, change.New),
			Changes:    []entity.FieldChange{change},
		}
		if err := tx.Updates().Create(log); err != nil {
			return err
		}

		result.Changed = true
		result.Log = log
		return nil
	})
	if err != nil {
		return nil, fail(uc.logger, "update campaign status", err)
	}

	if result.Changed {
		uc.logger.Info("Campaign %d status changed to %s by user %d", id, next, actor.UserID)
	}
	return result, nil
}

func (uc *campaignUseCase) Approve(ctx context.Context, actor Actor, id uint) (*CampaignChange, error) {
	return uc.UpdateStatus(ctx, actor, id, string(entity.CampaignApproved))
}

// UpdateCampaign applies the patch and records every changed field in a
// single log row.
func (uc *campaignUseCase) UpdateCampaign(ctx context.Context, actor Actor, id uint, patch CampaignPatch) (*CampaignChange, error) {
	result := &CampaignChange{}
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		campaign, err := tx.Campaigns().GetByIDForUpdate(id)
		if err != nil {
			return named(err, "campaign")
		}
		if err := authorizeOwner(actor, campaign); err != nil {
			return err
		}

		changes, err := applyCampaignPatch(campaign, patch)
		if err != nil {
			return err
		}
		result.Campaign = campaign
		if len(changes) == 0 {
			return nil
		}

		if err := tx.Campaigns().Update(campaign); err != nil {
			return err
		}

		fields := make([]string, len(changes))
		for i, c := range changes {
			fields[i] = c.Field
		}
		log := &entity.CampaignUpdate{
			CampaignID: campaign.ID,
			UserID:     actorID(actor),
			Title:      "Campaign updated",
			Content:    "updated fields: " + strings.Join(fields, ", "),
			Changes:    changes,
		}
		if err := tx.Updates().Create(log); err != nil {
			return err
		}

		result.Changed = true
		result.Log = log
		return nil
	})
	if err != nil {
		return nil, fail(uc.logger, "update campaign", err)
	}
	return result, nil
}

func applyCampaignPatch(c *entity.Campaign, patch CampaignPatch) ([]entity.FieldChange, error) {
	var changes []entity.FieldChange
	record := func(field, before, after string) {
		if before != after {
			changes = append(changes, entity.FieldChange{Field: field, Old: before, New: after})
		}
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, validationError("title cannot be empty")
		}
		if len(title) > maxTitleLength {
			return nil, validationError("title must be at most %d characters", maxTitleLength)
		}
		record("title", c.Title, title)
		c.Title = title
	}
	if patch.ShortDescription != nil {
		record("short_description", c.ShortDescription, *patch.ShortDescription)
		c.ShortDescription = *patch.ShortDescription
	}
	if patch.LongDescription != nil {
		record("long_description", c.LongDescription, *patch.LongDescription)
		c.LongDescription = *patch.LongDescription
	}
	if patch.Category != nil {
		category, err := entity.ParseCampaignCategory(*patch.Category)
		if err != nil {
			return nil, err
		}
		record("category", string(c.Category), string(category))
		c.Category = category
	}
	if patch.GoalAmount != nil {
		if !patch.GoalAmount.IsPositive() {
			return nil, validationError("goal amount must be greater than 0")
		}
		record("goal_amount", c.GoalAmount.StringFixed(2), patch.GoalAmount.StringFixed(2))
		c.GoalAmount = *patch.GoalAmount
	}
	if patch.RaisedAmount != nil {
		if patch.RaisedAmount.IsNegative() {
			return nil, validationError("raised amount cannot be negative")
		}
		record("raised_amount", c.RaisedAmount.StringFixed(2), patch.RaisedAmount.StringFixed(2))
		c.RaisedAmount = *patch.RaisedAmount
	}
	if patch.ImageURL != nil {
		record("image_url", c.ImageURL, *patch.ImageURL)
		c.ImageURL = *patch.ImageURL
	}
	if patch.EndDate != nil {
		if !patch.EndDate.After(c.StartDate) {
			return nil, validationError("end date must be after start date")
		}
		record("end_date", formatDate(c.EndDate), formatDate(patch.EndDate))
		end := patch.EndDate.UTC()
		c.EndDate = &end
	}
	return changes, nil
}

func (uc *campaignUseCase) UploadImage(ctx context.Context, actor Actor, id uint, file io.Reader, filename, contentType string) (*entity.Campaign, error) {
	if uc.images == nil {
		return nil, errors.New("image storage is not configured")
	}
	campaign, err := uc.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, campaign); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("campaigns/%d/%s%s", id, uuid.New().String(), path.Ext(filename))
	imageURL, err := uc.images.UploadFile(ctx, key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload campaign image: %v", err)
		return nil, fmt.Errorf("failed to upload campaign image: %w", err)
	}

	change, err := uc.UpdateCampaign(ctx, actor, id, CampaignPatch{ImageURL: &imageURL})
	if err != nil {
		return nil, err
	}
	return change.Campaign, nil
}

func (uc *campaignUseCase) DeleteCampaign(ctx context.Context, actor Actor, id uint) error {
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		campaign, err := tx.Campaigns().GetByIDForUpdate(id)
		if err != nil {
			return named(err, "campaign")
		}
		if err := authorizeOwner(actor, campaign); err != nil {
			return err
		}
		return tx.Campaigns().Delete(id)
	})
	if err != nil {
		return fail(uc.logger, "delete campaign", err)
	}

	uc.logger.Info("Campaign %d deleted by user %d", id, actor.UserID)
	return nil
}

func (uc *campaignUseCase) PostUpdate(ctx context.Context, actor Actor, campaignID uint, title, content string) (*entity.CampaignUpdate, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, validationError("title and content are required")
	}
	if len(title) > maxTitleLength {
		return nil, validationError("title must be at most %d characters", maxTitleLength)
	}

	update := &entity.CampaignUpdate{
		CampaignID: campaignID,
		UserID:     actorID(actor),
		Title:      title,
		Content:    content,
	}
	err := uc.store.Transaction(ctx, func(tx persistent.Store) error {
		campaign, err := tx.Campaigns().GetByID(campaignID)
		if err != nil {
			return named(err, "campaign")
		}
		if err := authorizeOwner(actor, campaign); err != nil {
			return err
		}
		return tx.Updates().Create(update)
	})
	if err != nil {
		return nil, fail(uc.logger, "post campaign update", err)
	}
	return update, nil
}

func (uc *campaignUseCase) GetUpdate(ctx context.Context, id uint) (*entity.CampaignUpdate, error) {
	update, err := uc.store.WithContext(ctx).Updates().GetByID(id)
	if err != nil {
		return nil, fail(uc.logger, "get campaign update", named(err, "campaign update"))
	}
	return update, nil
}

func (uc *campaignUseCase) ListUpdates(ctx context.Context, campaignID uint) ([]*entity.CampaignUpdate, error) {
	store := uc.store.WithContext(ctx)
	exists, err := store.Campaigns().Exists(campaignID)
	if err != nil {
		return nil, fail(uc.logger, "list campaign updates", err)
	}
	if !exists {
		return nil, notFound("campaign")
	}

	updates, err := store.Updates().ListByCampaign(campaignID)
	if err != nil {
		return nil, fail(uc.logger, "list campaign updates", err)
	}
	return updates, nil
}

// authorizeOwner lets the campaign's creator and admins through.
func authorizeOwner(actor Actor, campaign *entity.Campaign) error {
	if actor.IsAdmin() || actor.UserID == campaign.CreatorID {
		return nil
	}
	return fmt.Errorf("%w: only the campaign creator can modify campaign %d", entity.ErrForbidden, campaign.ID)
}

// authorizeStatusChange lets only admins moderate (approve or reject) a
// campaign. Any other status is the owner's call.
func authorizeStatusChange(actor Actor, campaign *entity.Campaign, next entity.CampaignStatus) error {
	switch next {
	case entity.CampaignApproved, entity.CampaignRejected:
		if !actor.IsAdmin() {
			return fmt.Errorf("%w: only admins can set campaign %d to %s", entity.ErrForbidden, campaign.ID, next)
		}
		return nil
	default:
		return authorizeOwner(actor, campaign)
	}
}

func actorID(actor Actor) *uint {
	if actor.UserID == 0 {
		return nil
	}
	id := actor.UserID
	return &id
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
